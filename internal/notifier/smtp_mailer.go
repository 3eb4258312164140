package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("notifier.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notifier.smtp")
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: l,
	}
}

func (m *smtpMailer) SendLeaveDecision(ctx context.Context, msg LeaveDecision) error {
	const dateLayout = "2 January 2006"

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", fmt.Sprintf("Pengajuan cuti Anda %s", statusLabel(msg.Status)))
	mail.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nPengajuan cuti Anda untuk %s s/d %s telah %s.\n\nSalam,\nHRD",
		msg.Name,
		msg.StartDate.Format(dateLayout),
		msg.EndDate.Format(dateLayout),
		statusLabel(msg.Status),
	))

	if err := m.dialer.DialAndSend(mail); err != nil {
		m.logger.Warn("send leave decision mail failed", zap.String("to", msg.To), zap.Error(err))
		return err
	}

	m.logger.Info("leave decision mail sent", zap.String("to", msg.To), zap.String("status", msg.Status))
	return nil
}

func statusLabel(status string) string {
	switch status {
	case "approved":
		return "disetujui"
	case "rejected":
		return "ditolak"
	default:
		return status
	}
}
