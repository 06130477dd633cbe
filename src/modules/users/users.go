package users

import (
	"errors"
	"log"
	"strconv"

	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"LibraryHub/src/core/models"
	"LibraryHub/src/modules/quiz"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func authUserID(c *fiber.Ctx) (int, error) {
	authID, ok := c.Locals("user_id").(string)
	if !ok || authID == "" {
		return 0, errors.New("missing user_id in token")
	}
	return strconv.Atoi(authID)
}

// GetProfile returns the authenticated user's account record.
func GetProfile(c *fiber.Ctx) error {
	db := database.DB

	userID, err := authUserID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", err)
	}

	user := new(models.User)
	err = db.Where("user_id = ?", userID).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch profile", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile retrieved successfully", user)
}

// UpdateProfile lets a user change their display name and grade level.
// Account type and status stay admin-only.
func UpdateProfile(c *fiber.Ctx) error {
	db := database.DB

	userID, err := authUserID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", err)
	}

	body := new(struct {
		FullName   string `json:"full_name"`
		GradeLevel string `json:"grade_level" validate:"max=20"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid profile data", err)
	}

	updates := map[string]interface{}{}
	if body.FullName != "" {
		updates["full_name"] = body.FullName
	}
	if body.GradeLevel != "" {
		updates["grade_level"] = body.GradeLevel
	}
	if len(updates) == 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	result := db.Model(&models.User{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		log.Printf("Error updating profile for user %d: %v\n", userID, result.Error)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Profile updated successfully", nil)
}

// GetMyProgress returns the student's reading counters: distinct books
// attempted, running average score, and rewards held. These are the same
// derivations the quiz submission uses, read from committed state.
func GetMyProgress(c *fiber.Ctx) error {
	db := database.DB

	userID, err := authUserID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", err)
	}

	booksCompleted, err := quiz.BooksCompleted(db, userID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to calculate books completed", err)
	}

	averageScore, err := quiz.AverageScore(db, userID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to calculate average score", err)
	}

	var totalAttempts int64
	if err := db.Model(&models.QuizAttempt{}).Where("user_id = ?", userID).Count(&totalAttempts).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count attempts", err)
	}

	var totalRewards int64
	if err := db.Model(&models.UserReward{}).Where("user_id = ?", userID).Count(&totalRewards).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count rewards", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Progress retrieved successfully", fiber.Map{
		"books_completed": booksCompleted,
		"average_score":   averageScore,
		"total_attempts":  totalAttempts,
		"rewards_earned":  totalRewards,
	})
}

// GetMyAttempts lists the student's attempt history, newest first.
func GetMyAttempts(c *fiber.Ctx) error {
	db := database.DB

	userID, err := authUserID(c)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", err)
	}

	var attempts []models.QuizAttempt
	err = db.Where("user_id = ?", userID).
		Order("attempt_date DESC").
		Find(&attempts).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch attempts", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Attempts fetched successfully", attempts)
}
