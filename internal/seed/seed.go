package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/deployappsa/absensi/internal/user"
)

// EnsureAdmin membuat akun admin bawaan bila belum ada, supaya instalasi baru
// selalu bisa login. Password default hanya untuk setup awal.
func EnsureAdmin(ctx context.Context, users user.Repository, logger *zap.Logger) error {
	const (
		defaultUsername = "admin"
		defaultPassword = "admin123"
		defaultName     = "Admin User"
	)

	if _, err := users.FindByUsername(ctx, defaultUsername); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &user.User{
		Username: defaultUsername,
		Password: string(hashed),
		Name:     defaultName,
		Role:     user.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("default admin account seeded", zap.Uint("user_id", admin.ID))
	return nil
}
