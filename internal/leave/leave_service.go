package leave

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deployappsa/absensi/internal/events"
	leaveerrors "github.com/deployappsa/absensi/internal/leave/errors"
	"github.com/deployappsa/absensi/internal/notifier"
	"github.com/deployappsa/absensi/internal/user"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID uint, req CreateLeaveRequest) (LeaveResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]LeaveResponse, error)
	Update(ctx context.Context, adminID, leaveID uint, req UpdateLeaveRequest) (LeaveResponse, error)
}

type service struct {
	repo      Repository
	users     user.Repository
	publisher events.Publisher
	mailer    notifier.Mailer
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	repo Repository,
	users user.Repository,
	publisher events.Publisher,
	mailer notifier.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		repo:      repo,
		users:     users,
		publisher: publisher,
		mailer:    mailer,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID uint, req CreateLeaveRequest) (LeaveResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	row := &Leave{
		UserID:      userID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Status:      StatusPending,
		Attachments: req.Attachments,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("create leave persist failed", zap.Uint("user_id", userID), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave requested", zap.Uint("leave_id", row.ID), zap.Uint("user_id", userID))
	return toResponse(*row), nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]LeaveResponse, error) {
	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(rows))
	for i, row := range rows {
		resp[i] = toResponse(row)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, adminID, leaveID uint, req UpdateLeaveRequest) (LeaveResponse, error) {
	row, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if row.Terminal() {
		return LeaveResponse{}, leaveerrors.ErrTerminalState
	}

	if req.Reason != nil {
		row.Reason = *req.Reason
	}
	if req.StartDate != nil {
		row.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		row.EndDate = *req.EndDate
	}
	if req.Attachments != nil {
		row.Attachments = *req.Attachments
	}
	if row.EndDate.Before(row.StartDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	decided := false
	if req.Status != nil && *req.Status != row.Status {
		row.Status = *req.Status
		if row.Terminal() {
			decided = true
			approver := adminID
			if req.ApprovedBy != nil {
				approver = *req.ApprovedBy
			}
			decidedAt := s.now()
			if req.ApprovedAt != nil {
				decidedAt = *req.ApprovedAt
			}
			row.ApprovedBy = &approver
			row.ApprovedAt = &decidedAt
		}
	}

	if err := s.repo.Save(ctx, row); err != nil {
		s.logger.Warn("update leave persist failed", zap.Uint("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}

	if decided {
		s.notifyDecision(ctx, row)
	}

	s.logger.Info("leave updated",
		zap.Uint("leave_id", row.ID),
		zap.String("status", row.Status),
		zap.Uint("admin_id", adminID),
	)
	return toResponse(*row), nil
}

func (s *service) notifyDecision(ctx context.Context, row *Leave) {
	evt := events.LeaveDecided{
		LeaveID:    row.ID,
		UserID:     row.UserID,
		Status:     row.Status,
		DecidedBy:  derefUint(row.ApprovedBy),
		OccurredAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, events.TopicLeaveDecided, evt); err != nil {
		s.logger.Warn("publish leave.decided failed", zap.Uint("leave_id", row.ID), zap.Error(err))
	}

	owner, err := s.users.FindByID(ctx, row.UserID)
	if err != nil || owner.Email == nil {
		return
	}
	msg := notifier.LeaveDecision{
		To:        *owner.Email,
		Name:      owner.Name,
		Status:    row.Status,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
	}
	if err := s.mailer.SendLeaveDecision(ctx, msg); err != nil {
		s.logger.Warn("leave decision mail failed", zap.Uint("leave_id", row.ID), zap.Error(err))
	}
}

func derefUint(v *uint) uint {
	if v == nil {
		return 0
	}
	return *v
}
