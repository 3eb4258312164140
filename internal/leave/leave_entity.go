package leave

import "time"

type Leave struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	UserID      uint       `gorm:"column:user_id;not null;index"`
	StartDate   time.Time  `gorm:"column:start_date;not null"`
	EndDate     time.Time  `gorm:"column:end_date;not null"`
	Reason      string     `gorm:"column:reason;not null"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	ApprovedBy  *uint      `gorm:"column:approved_by"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`
	Attachments []string   `gorm:"column:attachments;serializer:json"`
}

func (Leave) TableName() string {
	return "leaves"
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Terminal: approved/rejected tidak boleh ditransisikan lagi.
func (l Leave) Terminal() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}
