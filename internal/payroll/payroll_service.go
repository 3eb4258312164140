package payroll

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	payrollerrors "github.com/deployappsa/absensi/internal/payroll/errors"
	"github.com/deployappsa/absensi/internal/user"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]PayrollResponse, error)
	Pay(ctx context.Context, payrollID uint) (PayrollResponse, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, users: users, logger: l, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	if _, err := time.Parse("2006-01", req.Period); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrUserNotFound
		}
		return PayrollResponse{}, err
	}

	row := &Payroll{
		UserID:      req.UserID,
		Period:      req.Period,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Overtime:    req.Overtime,
		Deductions:  req.Deductions,
		Tax:         req.Tax,
		// netSalary selalu dihitung server, nilai dari client diabaikan
		NetSalary: req.BasicSalary + req.Allowances + req.Overtime - req.Deductions - req.Tax,
		Status:    StatusPending,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("create payroll persist failed", zap.Uint("user_id", req.UserID), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll created",
		zap.Uint("payroll_id", row.ID),
		zap.Uint("user_id", row.UserID),
		zap.String("period", row.Period),
	)
	return toResponse(*row), nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]PayrollResponse, error) {
	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]PayrollResponse, len(rows))
	for i, row := range rows {
		resp[i] = toResponse(row)
	}
	return resp, nil
}

func (s *service) Pay(ctx context.Context, payrollID uint) (PayrollResponse, error) {
	row, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}

	if row.Status == StatusPaid {
		return PayrollResponse{}, payrollerrors.ErrAlreadyPaid
	}

	paidAt := s.now()
	row.Status = StatusPaid
	row.PaidAt = &paidAt
	if err := s.repo.Save(ctx, row); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll paid", zap.Uint("payroll_id", row.ID))
	return toResponse(*row), nil
}
