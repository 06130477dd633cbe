package quiz

import (
	"fmt"
	"log"

	"LibraryHub/src/core/models"
	"gorm.io/gorm"
)

const passingScore = 70.0

type SubmitQuizInput struct {
	UserID          int     `json:"user_id" validate:"required"`
	BookID          int     `json:"book_id" validate:"required"`
	TotalQuestions  int     `json:"total_questions" validate:"required"`
	CorrectAnswers  int     `json:"correct_answers" validate:"min=0"`
	ScorePercentage float64 `json:"score_percentage" validate:"min=0,max=100"`
	TimeTaken       int     `json:"time_taken"`
}

type SubmitQuizResult struct {
	AttemptID      int      `json:"attempt_id"`
	BooksCompleted int      `json:"books_completed"`
	AverageScore   float64  `json:"average_score"`
	RewardsEarned  int      `json:"rewards_earned"`
	NewRewards     []string `json:"new_rewards"`
	AllRewards     []string `json:"all_rewards"`
	UserName       string   `json:"user_name"`
	BookTitle      string   `json:"book_title"`
	Passed         bool     `json:"passed"`
	IsReattempt    bool     `json:"is_reattempt"`
}

// SubmitQuiz runs the whole submission as one transaction:
// validate -> record attempt -> recompute progress -> grant rewards.
// Either everything commits or nothing does; a failure at any step leaves no
// attempt row and no grant behind. The audit log entry is written after the
// commit so a logging failure can never take the submission down with it.
func SubmitQuiz(db *gorm.DB, in *SubmitQuizInput, clientIP string) (*SubmitQuizResult, error) {
	out := new(SubmitQuizResult)

	err := db.Transaction(func(tx *gorm.DB) error {
		user, book, err := ValidateAttempt(tx, in)
		if err != nil {
			return err
		}

		// Re-attempt status is decided by the history as it was before this
		// submission lands.
		priorAttempts, err := CountPriorAttempts(tx, in.UserID, in.BookID)
		if err != nil {
			return err
		}

		attempt, err := RecordAttempt(tx, in)
		if err != nil {
			return err
		}

		// Both aggregates run inside the transaction so they see the row
		// recorded above.
		booksCompleted, err := BooksCompleted(tx, in.UserID)
		if err != nil {
			return err
		}
		averageScore, err := AverageScore(tx, in.UserID)
		if err != nil {
			return err
		}

		grants, err := GrantEligibleRewards(tx, in.UserID, booksCompleted)
		if err != nil {
			return err
		}

		out.AttemptID = attempt.AttemptID
		out.BooksCompleted = booksCompleted
		out.AverageScore = averageScore
		out.RewardsEarned = grants.TotalRewards
		out.NewRewards = grants.NewRewards
		out.AllRewards = grants.EligibleRewards
		out.UserName = user.FullName
		out.BookTitle = book.Title
		out.Passed = in.ScorePercentage >= passingScore
		out.IsReattempt = priorAttempts > 0
		return nil
	})
	if err != nil {
		return nil, err
	}

	writeAuditLog(db, in, out, clientIP)
	return out, nil
}

// writeAuditLog records the completed submission in system_logs. Best effort:
// an error here is logged and dropped, never returned.
func writeAuditLog(db *gorm.DB, in *SubmitQuizInput, out *SubmitQuizResult, clientIP string) {
	verdict := "FAILED"
	if out.Passed {
		verdict = "PASSED"
	}
	entry := models.SystemLog{
		UserID: in.UserID,
		Action: models.LogActionQuizCompleted,
		Description: fmt.Sprintf("Completed quiz for '%s' - Score: %d/%d (%.1f%%) - %s",
			out.BookTitle, in.CorrectAnswers, in.TotalQuestions, in.ScorePercentage, verdict),
		IPAddress: clientIP,
	}
	if result := db.Create(&entry); result.Error != nil {
		log.Printf("Failed to write quiz completion log for user %d: %v\n", in.UserID, result.Error)
	}
}
