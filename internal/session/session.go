package session

import (
	"context"
	"errors"
	"time"
)

// Session mengikat satu browser client ke user yang sudah login.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

var ErrNotFound = errors.New("session not found")

// Store adalah mapping session-id -> user-id dengan lifecycle eksplisit:
// dibuat saat login, dihapus saat logout atau kadaluarsa.
//
//go:generate mockgen -source=session.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	Create(ctx context.Context, userID uint) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Destroy(ctx context.Context, id string) error
}
