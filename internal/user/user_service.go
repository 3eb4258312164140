package user

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/deployappsa/absensi/internal/middleware"
	usererrors "github.com/deployappsa/absensi/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, userID uint) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// LoadPrincipal memenuhi middleware.PrincipalLoader
	LoadPrincipal(ctx context.Context, userID uint) (middleware.Principal, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetMe(ctx context.Context, userID uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return ToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(rows))
	for i, u := range rows {
		resp[i] = ToResponse(u)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested", zap.String("username", req.Username))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	u := &User{
		Username:     req.Username,
		Password:     string(hashed),
		Name:         req.Name,
		Role:         role,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		Gender:       req.Gender,
		DateOfBirth:  req.DateOfBirth,
		JoinDate:     req.JoinDate,
		Education:    req.Education,
		Avatar:       req.Avatar,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Warn("create user persist failed", zap.String("username", req.Username), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create user success",
		zap.Uint("user_id", u.ID),
		zap.String("username", u.Username),
		zap.String("role", u.Role),
	)
	return ToResponse(*u), nil
}

func (s *service) LoadPrincipal(ctx context.Context, userID uint) (middleware.Principal, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return middleware.Principal{}, err
	}
	return middleware.Principal{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}, nil
}
