package shift

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "08:00", want: 8 * time.Hour},
		{in: "23:59", want: 23*time.Hour + 59*time.Minute},
		{in: "0:05", want: 5 * time.Minute},
		{in: "24:00", wantErr: true},
		{in: "08:60", wantErr: true},
		{in: "pagi", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestService_CreateAndList(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	created, err := svc.Create(context.Background(), CreateShiftRequest{
		Name:             "Shift Pagi",
		StartTime:        "08:00",
		EndTime:          "17:00",
		AllowedLocations: []string{"-6.2088,106.8456"},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	all, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Shift Pagi", all[0].Name)
}

func TestService_CreateRejectsBadClock(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Shift Aneh",
		StartTime: "25:00",
		EndTime:   "17:00",
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Shift Kosong",
		StartTime: "08:00",
		EndTime:   "08:00",
	})
	assert.Error(t, err)
}

func TestService_CreateAllowsOvernightShift(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	created, err := svc.Create(context.Background(), CreateShiftRequest{
		Name:      "Shift Malam",
		StartTime: "22:00",
		EndTime:   "06:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "22:00", created.StartTime)
}
