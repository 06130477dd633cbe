package models

import (
	"time"
)

const (
	LogActionQuizCompleted     = "quiz_completed"
	LogActionBookAdded         = "book_added"
	LogActionQuestionsImported = "questions_imported"
	LogActionPasswordReset     = "password_reset"
)

type SystemLog struct {
	LogID       int       `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	UserID      int       `gorm:"column:user_id;type:int;index" json:"user_id"`
	Action      string    `gorm:"column:action;type:varchar(50);not null" json:"action"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IPAddress   string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
