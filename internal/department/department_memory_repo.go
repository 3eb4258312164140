package department

import (
	"context"
	"errors"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

var errDuplicateName = errors.New("department name already exists")

type memoryRepository struct {
	table *memstore.Table[Department]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Department]()}
}

func (r *memoryRepository) Create(ctx context.Context, d *Department) error {
	if _, err := r.table.Find(func(row Department) bool { return row.Name == d.Name }); err == nil {
		return errDuplicateName
	}

	saved := r.table.Insert(func(id uint) Department {
		d.ID = id
		return *d
	})
	*d = saved
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Department, error) {
	return r.table.List(nil), nil
}
