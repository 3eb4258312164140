package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deployappsa/absensi/internal/events"
	leaveerrors "github.com/deployappsa/absensi/internal/leave/errors"
	"github.com/deployappsa/absensi/internal/notifier"
	"github.com/deployappsa/absensi/internal/user"
)

type captureMailer struct {
	sent []notifier.LeaveDecision
}

func (m *captureMailer) SendLeaveDecision(ctx context.Context, msg notifier.LeaveDecision) error {
	m.sent = append(m.sent, msg)
	return nil
}

type leaveFixture struct {
	svc    Service
	users  user.Repository
	mailer *captureMailer
}

func newLeaveFixture(t *testing.T) *leaveFixture {
	t.Helper()

	users := user.NewMemoryRepository()
	mailer := &captureMailer{}
	svc := NewService(NewMemoryRepository(), users, events.NewLogPublisher(), mailer)
	return &leaveFixture{svc: svc, users: users, mailer: mailer}
}

func (f *leaveFixture) seedUser(t *testing.T, name string, email *string) uint {
	t.Helper()
	u := &user.User{Username: name, Password: "x", Name: name, Role: user.RoleEmployee, Email: email}
	assert.NoError(t, f.users.Create(context.Background(), u))
	return u.ID
}

func day(value string) time.Time {
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return ts
}

func strptr(s string) *string { return &s }

func TestCreate_AlwaysStartsPending(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	resp, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-03"),
		Reason:    "Acara keluarga",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Nil(t, resp.ApprovedBy)
	assert.Nil(t, resp.ApprovedAt)
}

func TestCreate_RejectsInvertedRange(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	_, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-03"),
		EndDate:   day("2026-09-01"),
		Reason:    "Salah isi",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
}

func TestCreate_SingleDayAllowed(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	_, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-01"),
		Reason:    "Izin sehari",
	})
	assert.NoError(t, err)
}

func TestUpdate_ApproveDefaultsApproverAndTimestamp(t *testing.T) {
	f := newLeaveFixture(t)
	email := "budi@example.com"
	userID := f.seedUser(t, "budi", &email)

	created, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Reason: "Cuti",
	})
	assert.NoError(t, err)

	resp, err := f.svc.Update(context.Background(), 9, created.ID, UpdateLeaveRequest{
		Status: strptr(StatusApproved),
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, uint(9), *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)

	assert.Len(t, f.mailer.sent, 1)
	assert.Equal(t, email, f.mailer.sent[0].To)
	assert.Equal(t, StatusApproved, f.mailer.sent[0].Status)
}

func TestUpdate_ExplicitApproverWins(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	created, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Reason: "Cuti",
	})
	assert.NoError(t, err)

	approver := uint(3)
	resp, err := f.svc.Update(context.Background(), 9, created.ID, UpdateLeaveRequest{
		Status:     strptr(StatusRejected),
		ApprovedBy: &approver,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(3), *resp.ApprovedBy)
}

func TestUpdate_TerminalStateLocked(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	created, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Reason: "Cuti",
	})
	assert.NoError(t, err)

	_, err = f.svc.Update(context.Background(), 1, created.ID, UpdateLeaveRequest{Status: strptr(StatusRejected)})
	assert.NoError(t, err)

	_, err = f.svc.Update(context.Background(), 1, created.ID, UpdateLeaveRequest{Status: strptr(StatusApproved)})
	assert.ErrorIs(t, err, leaveerrors.ErrTerminalState)

	_, err = f.svc.Update(context.Background(), 1, created.ID, UpdateLeaveRequest{Reason: strptr("edit")})
	assert.ErrorIs(t, err, leaveerrors.ErrTerminalState)
}

func TestUpdate_PartialMergeKeepsOtherFields(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	created, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Reason: "Cuti",
	})
	assert.NoError(t, err)

	resp, err := f.svc.Update(context.Background(), 1, created.ID, UpdateLeaveRequest{
		Reason: strptr("Cuti tahunan"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Cuti tahunan", resp.Reason)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, created.StartDate, resp.StartDate)
	assert.Empty(t, f.mailer.sent)
}

func TestUpdate_MergedRangeStillValidated(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	created, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Reason: "Cuti",
	})
	assert.NoError(t, err)

	late := day("2026-09-10")
	_, err = f.svc.Update(context.Background(), 1, created.ID, UpdateLeaveRequest{StartDate: &late})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
}

func TestUpdate_UnknownLeave(t *testing.T) {
	f := newLeaveFixture(t)
	_, err := f.svc.Update(context.Background(), 1, 42, UpdateLeaveRequest{Status: strptr(StatusApproved)})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}

func TestUpdate_NoMailWithoutAddress(t *testing.T) {
	f := newLeaveFixture(t)
	userID := f.seedUser(t, "budi", nil)

	created, err := f.svc.Create(context.Background(), userID, CreateLeaveRequest{
		StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Reason: "Cuti",
	})
	assert.NoError(t, err)

	_, err = f.svc.Update(context.Background(), 1, created.ID, UpdateLeaveRequest{Status: strptr(StatusApproved)})
	assert.NoError(t, err)
	assert.Empty(t, f.mailer.sent)
}
