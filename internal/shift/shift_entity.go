package shift

import (
	"fmt"
	"time"
)

type Shift struct {
	ID               uint     `gorm:"column:id;primaryKey"`
	Name             string   `gorm:"column:name;not null"`
	StartTime        string   `gorm:"column:start_time;not null"` // format HH:mm
	EndTime          string   `gorm:"column:end_time;not null"`   // format HH:mm
	AllowedLocations []string `gorm:"column:allowed_locations;serializer:json"`
}

func (Shift) TableName() string {
	return "shifts"
}

// ParseClock membaca jam dinding "HH:mm" menjadi offset sejak tengah malam.
func ParseClock(value string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(value, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q: out of range", value)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}
