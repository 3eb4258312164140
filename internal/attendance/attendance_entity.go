package attendance

import "time"

// Attendance adalah satu siklus kehadiran: check-in dulu, check-out belakangan.
// Tiga field check-out selalu terisi bersama-sama atau kosong bersama-sama.
type Attendance struct {
	ID               uint       `gorm:"column:id;primaryKey"`
	UserID           uint       `gorm:"column:user_id;not null;index"`
	ShiftID          uint       `gorm:"column:shift_id;not null"`
	CheckInTime      time.Time  `gorm:"column:check_in_time;not null"`
	CheckOutTime     *time.Time `gorm:"column:check_out_time"`
	CheckInPhoto     string     `gorm:"column:check_in_photo;not null"`
	CheckOutPhoto    *string    `gorm:"column:check_out_photo"`
	CheckInLocation  string     `gorm:"column:check_in_location;not null"`
	CheckOutLocation *string    `gorm:"column:check_out_location"`
	Status           string     `gorm:"column:status;not null"`
	Notes            *string    `gorm:"column:notes"`
	Approved         bool       `gorm:"column:approved;not null;default:false"`
}

func (Attendance) TableName() string {
	return "attendance"
}

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

func (a Attendance) CheckedOut() bool {
	return a.CheckOutTime != nil
}
