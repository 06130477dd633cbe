package dashboard

import (
	"strconv"
	"time"

	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"LibraryHub/src/core/models"
	"github.com/gofiber/fiber/v2"
)

// GetLibraryStats returns the counters shown on the admin and librarian
// dashboards. "Books passed" (distinct student-book pairs with a passing
// score) is display-only; it plays no part in reward logic, which counts any
// attempt.
func GetLibraryStats(c *fiber.Ctx) error {
	db := database.DB

	var totalBooks int64
	if err := db.Model(&models.Book{}).Count(&totalBooks).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count books", err)
	}

	var totalStudents int64
	err := db.Model(&models.User{}).
		Where("user_type = ? AND status = ?", models.UserTypeStudent, models.UserStatusActive).
		Count(&totalStudents).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count students", err)
	}

	var totalAttempts int64
	if err := db.Model(&models.QuizAttempt{}).Count(&totalAttempts).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count quiz attempts", err)
	}

	var booksPassed int64
	err = db.Raw(`SELECT COUNT(*) FROM (
			SELECT DISTINCT user_id, book_id FROM quiz_attempts WHERE score_percentage >= 70
		) passed`).Scan(&booksPassed).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count passed quizzes", err)
	}

	var activeReaders int64
	err = db.Model(&models.QuizAttempt{}).Distinct("user_id").Count(&activeReaders).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count active readers", err)
	}

	var rewardsGranted int64
	if err := db.Model(&models.UserReward{}).Count(&rewardsGranted).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count granted rewards", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Library stats fetched successfully", fiber.Map{
		"total_books":     totalBooks,
		"total_students":  totalStudents,
		"quizzes_taken":   totalAttempts,
		"books_passed":    booksPassed,
		"active_readers":  activeReaders,
		"rewards_granted": rewardsGranted,
	})
}

// GetRecentAttempts lists the latest quiz attempts with student and book
// names for the staff activity view.
func GetRecentAttempts(c *fiber.Ctx) error {
	db := database.DB

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	attempts := []struct {
		AttemptID       int       `json:"attempt_id"`
		FullName        string    `json:"full_name"`
		Title           string    `json:"title"`
		ScorePercentage float64   `json:"score_percentage"`
		AttemptDate     time.Time `json:"attempt_date"`
	}{}
	err = db.Table("quiz_attempts qa").
		Select("qa.attempt_id, u.full_name, b.title, qa.score_percentage, qa.attempt_date").
		Joins("JOIN users u ON u.user_id = qa.user_id").
		Joins("JOIN books b ON b.book_id = qa.book_id").
		Order("qa.attempt_date DESC").
		Limit(limit).
		Scan(&attempts).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch recent attempts", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Recent attempts fetched successfully", attempts)
}

// GetSystemLogs pages through the audit trail, newest first.
func GetSystemLogs(c *fiber.Ctx) error {
	db := database.DB

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	var logs []models.SystemLog
	err = db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch system logs", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "System logs fetched successfully", logs)
}
