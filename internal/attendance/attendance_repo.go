package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id uint) (*Attendance, error)
	Save(ctx context.Context, a *Attendance) error
	FindByUser(ctx context.Context, userID uint) ([]Attendance, error)
	FindPending(ctx context.Context) ([]Attendance, error)
	// FindOpen mencari check-in yang belum ditutup untuk user+shift pada
	// rentang hari tertentu. gorm.ErrRecordNotFound berarti tidak ada.
	FindOpen(ctx context.Context, userID, shiftID uint, from, to time.Time) (*Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Save(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByUser(ctx context.Context, userID uint) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("check_in_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPending(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("check_in_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOpen(ctx context.Context, userID, shiftID uint, from, to time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND shift_id = ? AND check_out_time IS NULL", userID, shiftID).
		Where("check_in_time >= ? AND check_in_time < ?", from, to).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).Order("check_in_time ASC").Find(&rows).Error
	return rows, err
}
