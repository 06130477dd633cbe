package models

import (
	"time"
)

type QuizQuestion struct {
	QuestionID      int       `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	BookID          int       `gorm:"column:book_id;type:int;not null;index" json:"book_id"`
	QuestionText    string    `gorm:"column:question_text;type:varchar(500);not null" json:"question_text"`
	OptionA         string    `gorm:"column:option_a;type:varchar(255);not null" json:"option_a"`
	OptionB         string    `gorm:"column:option_b;type:varchar(255);not null" json:"option_b"`
	OptionC         string    `gorm:"column:option_c;type:varchar(255);not null" json:"option_c"`
	OptionD         string    `gorm:"column:option_d;type:varchar(255);not null" json:"option_d"`
	CorrectAnswer   string    `gorm:"column:correct_answer;type:char(1);not null" json:"correct_answer"`
	DifficultyLevel string    `gorm:"column:difficulty_level;type:varchar(20);not null;default:medium" json:"difficulty_level"`
	CreatedBy       int       `gorm:"column:created_by;type:int" json:"created_by"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
