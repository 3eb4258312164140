package department

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	departmenterrors "github.com/deployappsa/absensi/internal/department/errors"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]DepartmentResponse, len(rows))
	for i, row := range rows {
		resp[i] = toResponse(row)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	row := &Department{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, row); err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, errDuplicateName) || (errors.As(err, &pgErr) && pgErr.Code == "23505") {
			return DepartmentResponse{}, departmenterrors.ErrNameTaken
		}
		s.logger.Warn("create department persist failed", zap.String("name", req.Name), zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.logger.Info("create department success", zap.Uint("department_id", row.ID), zap.String("name", row.Name))
	return toResponse(*row), nil
}
