package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher menulis event ke log saja. Dipakai di mode memory, di mana
// tidak ada broker maupun tabel outbox.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger ...*zap.Logger) *LogPublisher {
	l := zap.L().Named("events")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("events")
	}
	return &LogPublisher{logger: l}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload any) error {
	p.logger.Info("event published", zap.String("topic", topic), zap.Any("payload", payload))
	return nil
}
