package models

import (
	"time"

	"github.com/google/uuid"
)

type PasswordReset struct {
	Token     uuid.UUID `gorm:"column:token;type:uuid;primaryKey" json:"token"`
	UserID    int       `gorm:"column:user_id;type:int;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamp;not null" json:"expires_at"`
	Used      bool      `gorm:"column:used;type:boolean;default:false" json:"used"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
