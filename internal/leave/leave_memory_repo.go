package leave

import (
	"context"
	"sort"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Leave]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Leave]()}
}

func (r *memoryRepository) Create(ctx context.Context, l *Leave) error {
	saved := r.table.Insert(func(id uint) Leave {
		l.ID = id
		return *l
	})
	*l = saved
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uint) (*Leave, error) {
	row, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) Save(ctx context.Context, l *Leave) error {
	return r.table.Put(l.ID, *l)
}

func (r *memoryRepository) FindByUser(ctx context.Context, userID uint) ([]Leave, error) {
	rows := r.table.List(func(l Leave) bool { return l.UserID == userID })
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartDate.After(rows[j].StartDate) })
	return rows, nil
}
