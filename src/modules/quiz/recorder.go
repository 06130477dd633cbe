package quiz

import (
	"LibraryHub/src/core/models"
	"gorm.io/gorm"
)

// RecordAttempt appends exactly one quiz_attempts row for a validated
// submission and returns it with its assigned id. There is deliberately no
// uniqueness over (user_id, book_id): re-attempts are new rows.
func RecordAttempt(tx *gorm.DB, in *SubmitQuizInput) (*models.QuizAttempt, error) {
	attempt := &models.QuizAttempt{
		UserID:          in.UserID,
		BookID:          in.BookID,
		TotalQuestions:  in.TotalQuestions,
		CorrectAnswers:  in.CorrectAnswers,
		ScorePercentage: in.ScorePercentage,
		TimeTaken:       in.TimeTaken,
	}

	if result := tx.Create(attempt); result.Error != nil {
		return nil, result.Error
	}
	return attempt, nil
}
