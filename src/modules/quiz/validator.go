package quiz

import (
	"errors"
	"math"

	"LibraryHub/src/core/models"
	"gorm.io/gorm"
)

// scoreTolerance absorbs client-side rounding of the percentage. Anything
// further off than this is a tampered or buggy payload.
const scoreTolerance = 0.5

// ValidateAttempt checks a submission before any write happens: the account
// must be an active student, the book must exist, and the answer counts must
// be coherent. It returns the resolved user and book rows so the coordinator
// can shape the response without re-querying.
func ValidateAttempt(tx *gorm.DB, in *SubmitQuizInput) (*models.User, *models.Book, error) {
	if in.TotalQuestions <= 0 || in.CorrectAnswers < 0 || in.CorrectAnswers > in.TotalQuestions {
		return nil, nil, ErrScoreOutOfRange
	}

	// The client sends its own score_percentage; recompute it here and reject
	// values that disagree beyond rounding.
	expected := float64(in.CorrectAnswers) * 100 / float64(in.TotalQuestions)
	if math.Abs(expected-in.ScorePercentage) > scoreTolerance {
		return nil, nil, ErrScoreMismatch
	}

	if in.TimeTaken < 0 {
		return nil, nil, ErrScoreOutOfRange
	}

	user := new(models.User)
	err := tx.Where("user_id = ? AND user_type = ? AND status = ?",
		in.UserID, models.UserTypeStudent, models.UserStatusActive).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidStudent
	}
	if err != nil {
		return nil, nil, err
	}

	book := new(models.Book)
	err = tx.Where("book_id = ?", in.BookID).First(book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidBook
	}
	if err != nil {
		return nil, nil, err
	}

	return user, book, nil
}
