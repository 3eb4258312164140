package notifier

import (
	"context"

	"go.uber.org/zap"
)

// noopMailer dipakai saat SMTP tidak dikonfigurasi; keputusan tetap tercatat
// di log supaya terlihat saat pengembangan lokal.
type noopMailer struct {
	logger *zap.Logger
}

func NewNoopMailer(logger ...*zap.Logger) Mailer {
	l := zap.L().Named("notifier.noop")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notifier.noop")
	}
	return &noopMailer{logger: l}
}

func (m *noopMailer) SendLeaveDecision(ctx context.Context, msg LeaveDecision) error {
	m.logger.Debug("mail suppressed, smtp not configured",
		zap.String("to", msg.To),
		zap.String("status", msg.Status),
	)
	return nil
}
