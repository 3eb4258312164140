package leave

import "time"

type CreateLeaveRequest struct {
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Reason      string    `json:"reason" binding:"required"`
	Attachments []string  `json:"attachments"`
}

// UpdateLeaveRequest adalah patch parsial: hanya field non-nil yang digabung
// ke record yang ada.
type UpdateLeaveRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	ApprovedBy  *uint      `json:"approvedBy"`
	ApprovedAt  *time.Time `json:"approvedAt"`
	Reason      *string    `json:"reason"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Attachments *[]string  `json:"attachments"`
}

type LeaveResponse struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	ApprovedBy  *uint      `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}

func toResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		Reason:      l.Reason,
		Status:      l.Status,
		ApprovedBy:  l.ApprovedBy,
		ApprovedAt:  l.ApprovedAt,
		Attachments: l.Attachments,
	}
}
