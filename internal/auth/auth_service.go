package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/deployappsa/absensi/internal/auth/errors"
	"github.com/deployappsa/absensi/internal/session"
	"github.com/deployappsa/absensi/internal/user"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (user.UserResponse, session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	users    user.Repository
	sessions session.Store
	logger   *zap.Logger
}

func NewService(users user.Repository, sessions session.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, sessions: sessions, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (user.UserResponse, session.Session, error) {
	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("login gagal: username tidak dikenal", zap.String("username", req.Username))
			return user.UserResponse{}, session.Session{}, autherrors.ErrInvalidCredentials
		}
		return user.UserResponse{}, session.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login gagal: password salah", zap.String("username", req.Username))
		return user.UserResponse{}, session.Session{}, autherrors.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		s.logger.Error("gagal membuat session", zap.Uint("user_id", u.ID), zap.Error(err))
		return user.UserResponse{}, session.Session{}, err
	}

	s.logger.Info("login sukses",
		zap.Uint("user_id", u.ID),
		zap.String("username", u.Username),
		zap.String("role", u.Role),
	)
	return user.ToResponse(*u), sess, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}
	return nil
}
