package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	attendanceerrors "github.com/deployappsa/absensi/internal/attendance/errors"
	"github.com/deployappsa/absensi/internal/events"
	"github.com/deployappsa/absensi/internal/shift"
	"github.com/deployappsa/absensi/internal/user"
)

const DefaultLateThreshold = 15 * time.Minute

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, userID uint, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, userID, attendanceID uint, req CheckOutRequest) (AttendanceResponse, error)
	Approve(ctx context.Context, adminID, attendanceID uint, approved bool) (AttendanceResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]AttendanceResponse, error)
	ListPending(ctx context.Context) ([]PendingResponse, error)
	Export(ctx context.Context) ([]byte, error)
}

type Config struct {
	Redis         *redis.Client // nil = cache mati
	LateThreshold time.Duration
	CacheTTL      time.Duration
}

type service struct {
	repo          Repository
	users         user.Repository
	shifts        shift.Repository
	publisher     events.Publisher
	cache         *pendingCache
	sf            singleflight.Group
	lateThreshold time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewService(
	repo Repository,
	users user.Repository,
	shifts shift.Repository,
	publisher events.Publisher,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}

	threshold := cfg.LateThreshold
	if threshold <= 0 {
		threshold = DefaultLateThreshold
	}

	return &service{
		repo:          repo,
		users:         users,
		shifts:        shifts,
		publisher:     publisher,
		cache:         newPendingCache(cfg.Redis, cfg.CacheTTL, l),
		lateThreshold: threshold,
		logger:        l,
		now:           time.Now,
	}
}

func (s *service) CheckIn(ctx context.Context, userID uint, req CheckInRequest) (AttendanceResponse, error) {
	sh, err := s.shifts.FindByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrShiftNotFound
		}
		return AttendanceResponse{}, err
	}

	dayStart := startOfDay(req.Timestamp)
	if _, err := s.repo.FindOpen(ctx, userID, req.ShiftID, dayStart, dayStart.Add(24*time.Hour)); err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	status, err := s.resolveStatus(sh, req.Timestamp)
	if err != nil {
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		UserID:          userID,
		ShiftID:         req.ShiftID,
		CheckInTime:     req.Timestamp,
		CheckInPhoto:    req.Photo,
		CheckInLocation: req.Location,
		Status:          status,
		Notes:           req.Notes,
		Approved:        false,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("check-in persist failed", zap.Uint("user_id", userID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.cache.invalidate(ctx)
	s.logger.Info("check-in recorded",
		zap.Uint("attendance_id", row.ID),
		zap.Uint("user_id", userID),
		zap.String("status", status),
	)
	return toResponse(*row), nil
}

// resolveStatus menghitung present/late dari jam dinding check-in terhadap
// jam mulai shift. Client tidak pernah menentukan status sendiri.
func (s *service) resolveStatus(sh *shift.Shift, ts time.Time) (string, error) {
	start, err := shift.ParseClock(sh.StartTime)
	if err != nil {
		return "", err
	}

	wall := time.Duration(ts.Hour())*time.Hour +
		time.Duration(ts.Minute())*time.Minute +
		time.Duration(ts.Second())*time.Second
	if wall > start+s.lateThreshold {
		return StatusLate, nil
	}
	return StatusPresent, nil
}

func startOfDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

func (s *service) CheckOut(ctx context.Context, userID, attendanceID uint, req CheckOutRequest) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	if row.UserID != userID {
		return AttendanceResponse{}, attendanceerrors.ErrNotOwner
	}
	if row.CheckedOut() {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	ts := req.Timestamp
	photo := req.Photo
	location := req.Location
	row.CheckOutTime = &ts
	row.CheckOutPhoto = &photo
	row.CheckOutLocation = &location

	if err := s.repo.Save(ctx, row); err != nil {
		s.logger.Warn("check-out persist failed", zap.Uint("attendance_id", attendanceID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.cache.invalidate(ctx)
	s.logger.Info("check-out recorded", zap.Uint("attendance_id", row.ID), zap.Uint("user_id", userID))
	return toResponse(*row), nil
}

func (s *service) Approve(ctx context.Context, adminID, attendanceID uint, approved bool) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	row.Approved = approved
	if err := s.repo.Save(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	s.cache.invalidate(ctx)

	evt := events.AttendanceApproved{
		AttendanceID: row.ID,
		UserID:       row.UserID,
		Approved:     approved,
		ApprovedBy:   adminID,
		OccurredAt:   s.now(),
	}
	if err := s.publisher.Publish(ctx, events.TopicAttendanceApproved, evt); err != nil {
		// Approval sudah tersimpan; event yang gagal cukup dicatat.
		s.logger.Warn("publish attendance.approved failed", zap.Uint("attendance_id", row.ID), zap.Error(err))
	}

	s.logger.Info("attendance approval updated",
		zap.Uint("attendance_id", row.ID),
		zap.Bool("approved", approved),
		zap.Uint("admin_id", adminID),
	)
	return toResponse(*row), nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = toResponse(row)
	}
	return resp, nil
}

func (s *service) ListPending(ctx context.Context) ([]PendingResponse, error) {
	if rows, ok := s.cache.get(ctx); ok {
		return rows, nil
	}

	// singleflight mencegah stampede saat cache kosong dan beberapa admin
	// membuka halaman approval bersamaan.
	v, err, _ := s.sf.Do(pendingCacheKey, func() (any, error) {
		rows, err := s.loadPending(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.set(ctx, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]PendingResponse), nil
}

func (s *service) loadPending(ctx context.Context) ([]PendingResponse, error) {
	rows, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PendingResponse, len(rows))
	for i, row := range rows {
		resp[i] = PendingResponse{
			AttendanceResponse: toResponse(row),
			UserName:           s.displayName(ctx, row.UserID),
		}
	}
	return resp, nil
}

func (s *service) displayName(ctx context.Context, userID uint) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}
