package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deployappsa/absensi/internal/events"
	"github.com/deployappsa/absensi/internal/shared/contextutil"
)

// OutboxPublisher mengimplementasikan events.Publisher dengan menulis baris
// outbox; pengiriman ke broker dilakukan asinkron oleh cmd/worker.
type OutboxPublisher struct {
	repo   OutboxRepository
	logger *zap.Logger
}

func NewOutboxPublisher(repo OutboxRepository, logger ...*zap.Logger) *OutboxPublisher {
	l := zap.L().Named("events.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("events.outbox")
	}
	return &OutboxPublisher{repo: repo, logger: l}
}

func (p *OutboxPublisher) Publish(ctx context.Context, topic string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	aggType, aggID := aggregateFor(payload)
	event := OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: aggType,
		AggregateID:   aggID,
		EventType:     topic,
		Topic:         topic,
		Payload:       raw,
		Status:        OutboxStatusPending,
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	if err := p.repo.Create(ctx, event); err != nil {
		return err
	}

	p.logger.Debug("outbox event stored",
		zap.String("outbox_id", event.ID),
		zap.String("topic", topic),
	)
	return nil
}

func aggregateFor(payload any) (string, string) {
	switch evt := payload.(type) {
	case events.AttendanceApproved:
		return "attendance", strconv.FormatUint(uint64(evt.AttendanceID), 10)
	case events.LeaveDecided:
		return "leave", strconv.FormatUint(uint64(evt.LeaveID), 10)
	default:
		return "event", uuid.NewString()
	}
}
