package user

import (
	"context"
	"errors"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

var errDuplicateUsername = errors.New("username already exists")

type memoryRepository struct {
	table *memstore.Table[User]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[User]()}
}

func (r *memoryRepository) Create(ctx context.Context, u *User) error {
	if _, err := r.table.Find(func(row User) bool { return row.Username == u.Username }); err == nil {
		return errDuplicateUsername
	}

	saved := r.table.Insert(func(id uint) User {
		u.ID = id
		return *u
	})
	*u = saved
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	row, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	row, err := r.table.Find(func(u User) bool { return u.Username == username })
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]User, error) {
	return r.table.List(nil), nil
}
