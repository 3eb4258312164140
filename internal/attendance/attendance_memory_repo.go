package attendance

import (
	"context"
	"sort"
	"time"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Attendance]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Attendance]()}
}

func (r *memoryRepository) Create(ctx context.Context, a *Attendance) error {
	saved := r.table.Insert(func(id uint) Attendance {
		a.ID = id
		return *a
	})
	*a = saved
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	row, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) Save(ctx context.Context, a *Attendance) error {
	return r.table.Put(a.ID, *a)
}

func (r *memoryRepository) FindByUser(ctx context.Context, userID uint) ([]Attendance, error) {
	rows := r.table.List(func(a Attendance) bool { return a.UserID == userID })
	sort.Slice(rows, func(i, j int) bool { return rows[i].CheckInTime.After(rows[j].CheckInTime) })
	return rows, nil
}

func (r *memoryRepository) FindPending(ctx context.Context) ([]Attendance, error) {
	rows := r.table.List(func(a Attendance) bool { return !a.Approved })
	sort.Slice(rows, func(i, j int) bool { return rows[i].CheckInTime.Before(rows[j].CheckInTime) })
	return rows, nil
}

func (r *memoryRepository) FindOpen(ctx context.Context, userID, shiftID uint, from, to time.Time) (*Attendance, error) {
	row, err := r.table.Find(func(a Attendance) bool {
		return a.UserID == userID &&
			a.ShiftID == shiftID &&
			a.CheckOutTime == nil &&
			!a.CheckInTime.Before(from) &&
			a.CheckInTime.Before(to)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Attendance, error) {
	rows := r.table.List(nil)
	sort.Slice(rows, func(i, j int) bool { return rows[i].CheckInTime.Before(rows[j].CheckInTime) })
	return rows, nil
}
