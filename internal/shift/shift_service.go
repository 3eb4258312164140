package shift

import (
	"context"

	"go.uber.org/zap"

	"github.com/deployappsa/absensi/internal/shared/apperror"
	shifterrors "github.com/deployappsa/absensi/internal/shift/errors"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]ShiftResponse, error)
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ShiftResponse, len(rows))
	for i, row := range rows {
		resp[i] = toResponse(row)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	start, err := ParseClock(req.StartTime)
	if err != nil {
		return ShiftResponse{}, apperror.InvalidField("startTime")
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return ShiftResponse{}, apperror.InvalidField("endTime")
	}
	// Shift lintas tengah malam (end < start) diperbolehkan, tapi start == end
	// berarti shift kosong.
	if start == end {
		return ShiftResponse{}, shifterrors.ErrEmptyShift
	}

	row := &Shift{
		Name:             req.Name,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		AllowedLocations: req.AllowedLocations,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("create shift persist failed", zap.String("name", req.Name), zap.Error(err))
		return ShiftResponse{}, err
	}

	s.logger.Info("create shift success", zap.Uint("shift_id", row.ID), zap.String("name", row.Name))
	return toResponse(*row), nil
}
