package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	attendanceerrors "github.com/deployappsa/absensi/internal/attendance/errors"
	"github.com/deployappsa/absensi/internal/events"
	eventsmock "github.com/deployappsa/absensi/internal/events/mock"
	"github.com/deployappsa/absensi/internal/shift"
	"github.com/deployappsa/absensi/internal/user"
)

type fixture struct {
	svc    Service
	users  user.Repository
	shifts shift.Repository
}

func newFixture(t *testing.T, publisher events.Publisher) *fixture {
	t.Helper()

	users := user.NewMemoryRepository()
	shifts := shift.NewMemoryRepository()
	if publisher == nil {
		publisher = events.NewLogPublisher()
	}

	svc := NewService(NewMemoryRepository(), users, shifts, publisher, Config{})
	return &fixture{svc: svc, users: users, shifts: shifts}
}

func (f *fixture) seedShift(t *testing.T, start, end string) uint {
	t.Helper()
	s := &shift.Shift{Name: "Shift Pagi", StartTime: start, EndTime: end}
	assert.NoError(t, f.shifts.Create(context.Background(), s))
	return s.ID
}

func (f *fixture) seedUser(t *testing.T, name string) uint {
	t.Helper()
	u := &user.User{Username: name, Password: "x", Name: name, Role: user.RoleEmployee}
	assert.NoError(t, f.users.Create(context.Background(), u))
	return u.ID
}

func at(clock string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04", "2026-08-03 "+clock)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestCheckIn_PresentWithinThreshold(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	resp, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID:   shiftID,
		Timestamp: at("08:10"),
		Photo:     "data:image/jpeg;base64,xxx",
		Location:  "-6.2088,106.8456",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, resp.Status)
	assert.False(t, resp.Approved)
	assert.Nil(t, resp.CheckOutTime)
}

func TestCheckIn_LatePastThreshold(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	resp, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID:   shiftID,
		Timestamp: at("08:16"),
		Photo:     "p",
		Location:  "l",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusLate, resp.Status)
}

func TestCheckIn_UnknownShift(t *testing.T) {
	f := newFixture(t, nil)
	userID := f.seedUser(t, "budi")

	_, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID:   99,
		Timestamp: at("08:00"),
		Photo:     "p",
		Location:  "l",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrShiftNotFound)
}

func TestCheckIn_DuplicateOpenSameDay(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	req := CheckInRequest{ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l"}
	_, err := f.svc.CheckIn(context.Background(), userID, req)
	assert.NoError(t, err)

	req.Timestamp = at("09:00")
	_, err = f.svc.CheckIn(context.Background(), userID, req)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
}

func TestCheckIn_AllowedAgainAfterCheckOut(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	first, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	_, err = f.svc.CheckOut(context.Background(), userID, first.ID, CheckOutRequest{
		Timestamp: at("17:05"), Photo: "p2", Location: "l2",
	})
	assert.NoError(t, err)

	_, err = f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("18:00"), Photo: "p3", Location: "l3",
	})
	assert.NoError(t, err)
}

func TestCheckOut_SetsTripleJointly(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	created, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	resp, err := f.svc.CheckOut(context.Background(), userID, created.ID, CheckOutRequest{
		Timestamp: at("17:05"), Photo: "out.jpg", Location: "-6.2,106.8",
	})
	assert.NoError(t, err)
	assert.NotNil(t, resp.CheckOutTime)
	assert.NotNil(t, resp.CheckOutPhoto)
	assert.NotNil(t, resp.CheckOutLocation)
	assert.Equal(t, "out.jpg", *resp.CheckOutPhoto)
}

func TestCheckOut_OwnerOnly(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	owner := f.seedUser(t, "budi")
	other := f.seedUser(t, "siti")

	created, err := f.svc.CheckIn(context.Background(), owner, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	_, err = f.svc.CheckOut(context.Background(), other, created.ID, CheckOutRequest{
		Timestamp: at("17:00"), Photo: "p", Location: "l",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrNotOwner)
}

func TestCheckOut_Twice(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	created, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	out := CheckOutRequest{Timestamp: at("17:00"), Photo: "p", Location: "l"}
	_, err = f.svc.CheckOut(context.Background(), userID, created.ID, out)
	assert.NoError(t, err)

	_, err = f.svc.CheckOut(context.Background(), userID, created.ID, out)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
}

func TestCheckOut_UnknownRecord(t *testing.T) {
	f := newFixture(t, nil)
	userID := f.seedUser(t, "budi")

	_, err := f.svc.CheckOut(context.Background(), userID, 42, CheckOutRequest{
		Timestamp: at("17:00"), Photo: "p", Location: "l",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}

func TestApprove_FlipsFlagAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := eventsmock.NewMockPublisher(ctrl)

	f := newFixture(t, publisher)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	created, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	publisher.EXPECT().
		Publish(gomock.Any(), events.TopicAttendanceApproved, gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic string, payload any) error {
			evt, ok := payload.(events.AttendanceApproved)
			assert.True(t, ok)
			assert.Equal(t, created.ID, evt.AttendanceID)
			assert.True(t, evt.Approved)
			assert.Equal(t, uint(1), evt.ApprovedBy)
			return nil
		})

	resp, err := f.svc.Approve(context.Background(), 1, created.ID, true)
	assert.NoError(t, err)
	assert.True(t, resp.Approved)
}

func TestApprove_UnknownRecord(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.Approve(context.Background(), 1, 42, true)
	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}

func TestListPending_AnnotatesUserName(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "Budi Santoso")

	_, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	pending, err := f.svc.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "Budi Santoso", pending[0].UserName)
}

func TestListPending_UnknownOwnerFallback(t *testing.T) {
	f := newFixture(t, nil)

	repo := NewMemoryRepository()
	svc := NewService(repo, f.users, f.shifts, events.NewLogPublisher(), Config{})
	assert.NoError(t, repo.Create(context.Background(), &Attendance{
		UserID:          77,
		ShiftID:         1,
		CheckInTime:     at("08:00"),
		CheckInPhoto:    "p",
		CheckInLocation: "l",
		Status:          StatusPresent,
	}))

	pending, err := svc.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "Unknown", pending[0].UserName)
}

func TestListPending_ExcludesApproved(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	created, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), 1, created.ID, true)
	assert.NoError(t, err)

	pending, err := f.svc.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, pending)
}

func TestExport_ProducesWorkbook(t *testing.T) {
	f := newFixture(t, nil)
	shiftID := f.seedShift(t, "08:00", "17:00")
	userID := f.seedUser(t, "budi")

	_, err := f.svc.CheckIn(context.Background(), userID, CheckInRequest{
		ShiftID: shiftID, Timestamp: at("08:00"), Photo: "p", Location: "l",
	})
	assert.NoError(t, err)

	report, err := f.svc.Export(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, report)
	// xlsx adalah arsip zip
	assert.Equal(t, []byte("PK"), report[:2])
}
