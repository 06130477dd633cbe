package models

import (
	"time"
)

// QuizAttempt is append-only. Rows are never updated or deleted; a student
// re-taking the quiz for the same book produces a new row.
type QuizAttempt struct {
	AttemptID       int       `gorm:"column:attempt_id;primaryKey;autoIncrement" json:"attempt_id"`
	UserID          int       `gorm:"column:user_id;type:int;not null;index" json:"user_id"`
	BookID          int       `gorm:"column:book_id;type:int;not null;index" json:"book_id"`
	TotalQuestions  int       `gorm:"column:total_questions;type:int;not null" json:"total_questions"`
	CorrectAnswers  int       `gorm:"column:correct_answers;type:int;not null" json:"correct_answers"`
	ScorePercentage float64   `gorm:"column:score_percentage;type:decimal(5,2);not null" json:"score_percentage"`
	TimeTaken       int       `gorm:"column:time_taken;type:int;default:0" json:"time_taken"`
	AttemptDate     time.Time `gorm:"column:attempt_date;autoCreateTime" json:"attempt_date"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
