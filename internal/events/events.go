package events

import (
	"context"
	"time"
)

// Topik domain yang dipublikasikan keluar proses.
const (
	TopicAttendanceApproved = "attendance.approved"
	TopicLeaveDecided       = "leave.decided"
)

// AttendanceApproved dikirim saat admin mengubah flag approved sebuah record.
type AttendanceApproved struct {
	AttendanceID uint      `json:"attendanceId"`
	UserID       uint      `json:"userId"`
	Approved     bool      `json:"approved"`
	ApprovedBy   uint      `json:"approvedBy"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// LeaveDecided dikirim saat pengajuan cuti mencapai status terminal.
type LeaveDecided struct {
	LeaveID    uint      `json:"leaveId"`
	UserID     uint      `json:"userId"`
	Status     string    `json:"status"`
	DecidedBy  uint      `json:"decidedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

//go:generate mockgen -source=events.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
