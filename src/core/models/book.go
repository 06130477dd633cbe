package models

import (
	"time"
)

type Book struct {
	BookID                int       `gorm:"column:book_id;primaryKey;autoIncrement" json:"book_id"`
	Title                 string    `gorm:"column:title;type:text;not null" json:"title"`
	Author                string    `gorm:"column:author;type:text;not null" json:"author"`
	QRCode                string    `gorm:"column:qr_code;type:varchar(100);unique;not null" json:"qr_code"`
	QRCodeURL             string    `gorm:"column:qr_code_url;type:text" json:"qr_code_url"`
	QRCodeStoragePath     string    `gorm:"column:qr_code_storage_path;type:text" json:"qr_code_storage_path"`
	Genre                 string    `gorm:"column:genre;type:varchar(100)" json:"genre"`
	RecommendedGradeLevel string    `gorm:"column:recommended_grade_level;type:varchar(20)" json:"recommended_grade_level"`
	TotalPages            int       `gorm:"column:total_pages;type:int;default:0" json:"total_pages"`
	DifficultyLevel       string    `gorm:"column:difficulty_level;type:varchar(20);default:medium" json:"difficulty_level"`
	Description           string    `gorm:"column:description;type:text" json:"description"`
	IsAvailable           bool      `gorm:"column:is_available;type:boolean;default:true" json:"is_available"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}
