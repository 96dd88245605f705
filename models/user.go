package models

import (
	"time"
)

// Role values stored in users.role.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	UserID       int        `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	Name         string     `gorm:"column:name" json:"name"`
	Email        string     `gorm:"column:email;unique" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Role         string     `gorm:"column:role" json:"role"`
	Avatar       string     `gorm:"column:avatar" json:"avatar"`
	StudentID    *string    `gorm:"column:student_id" json:"student_id,omitempty"`
	Organization *string    `gorm:"column:organization" json:"organization,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// TableName overrides
func (User) TableName() string {
	return "users"
}
