package user

import "time"

type CreateUserRequest struct {
	Username     string     `json:"username" binding:"required"`
	Password     string     `json:"password" binding:"required,min=6"`
	Name         string     `json:"name" binding:"required"`
	Role         string     `json:"role" binding:"omitempty,oneof=admin employee"`
	DepartmentID *uint      `json:"departmentId"`
	Position     *string    `json:"position"`
	Gender       *string    `json:"gender" binding:"omitempty,oneof=male female"`
	DateOfBirth  *time.Time `json:"dateOfBirth"`
	JoinDate     *time.Time `json:"joinDate"`
	Education    *string    `json:"education" binding:"omitempty,oneof=sma smk d3 s1 s2 s3"`
	Avatar       *string    `json:"avatar"`
	Address      *string    `json:"address"`
	Phone        *string    `json:"phone"`
	Email        *string    `json:"email" binding:"omitempty,email"`
}

type UserResponse struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	DepartmentID *uint      `json:"departmentId,omitempty"`
	Position     *string    `json:"position,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	JoinDate     *time.Time `json:"joinDate,omitempty"`
	Education    *string    `json:"education,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	Address      *string    `json:"address,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Email        *string    `json:"email,omitempty"`
}

// ToResponse membuang field sensitif (password) dari entity.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		Position:     u.Position,
		Gender:       u.Gender,
		DateOfBirth:  u.DateOfBirth,
		JoinDate:     u.JoinDate,
		Education:    u.Education,
		Avatar:       u.Avatar,
		Address:      u.Address,
		Phone:        u.Phone,
		Email:        u.Email,
	}
}
