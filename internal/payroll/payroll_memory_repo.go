package payroll

import (
	"context"
	"sort"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Payroll]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Payroll]()}
}

func (r *memoryRepository) Create(ctx context.Context, p *Payroll) error {
	saved := r.table.Insert(func(id uint) Payroll {
		p.ID = id
		return *p
	})
	*p = saved
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uint) (*Payroll, error) {
	row, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) Save(ctx context.Context, p *Payroll) error {
	return r.table.Put(p.ID, *p)
}

func (r *memoryRepository) FindByUser(ctx context.Context, userID uint) ([]Payroll, error) {
	rows := r.table.List(func(p Payroll) bool { return p.UserID == userID })
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period > rows[j].Period })
	return rows, nil
}
