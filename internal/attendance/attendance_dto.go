package attendance

import "time"

type CheckInRequest struct {
	ShiftID   uint      `json:"shiftId" binding:"required"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Photo     string    `json:"photo" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Notes     *string   `json:"notes"`
}

type CheckOutRequest struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Photo     string    `json:"photo" binding:"required"`
	Location  string    `json:"location" binding:"required"`
}

type ApproveRequest struct {
	// Pointer supaya {"approved": false} tetap lolos required.
	Approved *bool `json:"approved" binding:"required"`
}

type AttendanceResponse struct {
	ID               uint       `json:"id"`
	UserID           uint       `json:"userId"`
	ShiftID          uint       `json:"shiftId"`
	CheckInTime      time.Time  `json:"checkInTime"`
	CheckOutTime     *time.Time `json:"checkOutTime,omitempty"`
	CheckInPhoto     string     `json:"checkInPhoto"`
	CheckOutPhoto    *string    `json:"checkOutPhoto,omitempty"`
	CheckInLocation  string     `json:"checkInLocation"`
	CheckOutLocation *string    `json:"checkOutLocation,omitempty"`
	Status           string     `json:"status"`
	Notes            *string    `json:"notes,omitempty"`
	Approved         bool       `json:"approved"`
}

// PendingResponse menambahkan nama karyawan pada record yang menunggu approval
// supaya admin tidak perlu join manual di sisi client.
type PendingResponse struct {
	AttendanceResponse
	UserName string `json:"userName"`
}

func toResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		ShiftID:          a.ShiftID,
		CheckInTime:      a.CheckInTime,
		CheckOutTime:     a.CheckOutTime,
		CheckInPhoto:     a.CheckInPhoto,
		CheckOutPhoto:    a.CheckOutPhoto,
		CheckInLocation:  a.CheckInLocation,
		CheckOutLocation: a.CheckOutLocation,
		Status:           a.Status,
		Notes:            a.Notes,
		Approved:         a.Approved,
	}
}
