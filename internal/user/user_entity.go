package user

import "time"

type User struct {
	ID           uint       `gorm:"column:id;primaryKey"`
	Username     string     `gorm:"column:username;uniqueIndex;not null"`
	Password     string     `gorm:"column:password;not null"` // bcrypt hash, jangan pernah diserialisasi
	Name         string     `gorm:"column:name;not null"`
	Role         string     `gorm:"column:role;not null;default:employee"`
	DepartmentID *uint      `gorm:"column:department_id"`
	Position     *string    `gorm:"column:position"`
	Gender       *string    `gorm:"column:gender"`
	DateOfBirth  *time.Time `gorm:"column:date_of_birth"`
	JoinDate     *time.Time `gorm:"column:join_date"`
	Education    *string    `gorm:"column:education"`
	Avatar       *string    `gorm:"column:avatar"`
	Address      *string    `gorm:"column:address"`
	Phone        *string    `gorm:"column:phone"`
	Email        *string    `gorm:"column:email"`
}

func (User) TableName() string {
	return "users"
}

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)
