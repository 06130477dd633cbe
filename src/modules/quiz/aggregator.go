package quiz

import (
	"database/sql"
	"math"

	"LibraryHub/src/core/models"
	"gorm.io/gorm"
)

// CountPriorAttempts returns how many attempts the student already has for
// this book. The coordinator calls it before inserting the new attempt, so a
// non-zero count means the current submission is a re-attempt.
func CountPriorAttempts(tx *gorm.DB, userID, bookID int) (int64, error) {
	var count int64
	err := tx.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	return count, err
}

// BooksCompleted counts the distinct books the student has attempted. Any
// attempt counts towards completion regardless of score; only distinctness of
// the book matters. This is the quantity reward thresholds are checked
// against, and it never decreases because attempts are never deleted.
func BooksCompleted(tx *gorm.DB, userID int) (int, error) {
	var count int64
	err := tx.Model(&models.QuizAttempt{}).
		Where("user_id = ?", userID).
		Distinct("book_id").
		Count(&count).Error
	return int(count), err
}

// AverageScore returns the mean score percentage across every attempt the
// student has made (not best-per-book), rounded to one decimal for display.
func AverageScore(tx *gorm.DB, userID int) (float64, error) {
	row := tx.Model(&models.QuizAttempt{}).
		Where("user_id = ?", userID).
		Select("AVG(score_percentage)").
		Row()

	var avg sql.NullFloat64
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return math.Round(avg.Float64*10) / 10, nil
}
