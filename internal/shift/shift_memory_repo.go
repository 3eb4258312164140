package shift

import (
	"context"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Shift]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Shift]()}
}

func (r *memoryRepository) Create(ctx context.Context, s *Shift) error {
	saved := r.table.Insert(func(id uint) Shift {
		row := *s
		row.ID = id
		return row
	})
	*s = saved
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uint) (*Shift, error) {
	row, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Shift, error) {
	return r.table.List(nil), nil
}
