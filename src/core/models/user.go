package models

import (
	"time"
)

const (
	UserTypeAdmin     = "admin"
	UserTypeLibrarian = "librarian"
	UserTypeTeacher   = "teacher"
	UserTypeStudent   = "student"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	UserID       int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	StudentID    string    `gorm:"column:student_id;type:varchar(50);unique" json:"student_id"`
	FullName     string    `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email        string    `gorm:"column:email;type:text;unique;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	UserType     string    `gorm:"column:user_type;type:varchar(20);not null;default:student" json:"user_type"`
	GradeLevel   string    `gorm:"column:grade_level;type:varchar(20)" json:"grade_level"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;default:active" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
