package notifier

import (
	"context"
	"time"
)

// LeaveDecision adalah isi e-mail pemberitahuan keputusan cuti.
type LeaveDecision struct {
	To        string
	Name      string
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendLeaveDecision(ctx context.Context, msg LeaveDecision) error
}
