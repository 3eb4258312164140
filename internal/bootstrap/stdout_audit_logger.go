package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StdoutAuditLogger menulis jejak audit sebagai log terstruktur lewat
// logger global zap bernama "audit".
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info(entry.Action,
		zap.Time("at", time.Now().UTC()),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
