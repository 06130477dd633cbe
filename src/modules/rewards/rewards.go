package rewards

import (
	"errors"
	"log"
	"strconv"
	"time"

	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"LibraryHub/src/core/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetRewards lists reward definitions in threshold order. Students see only
// active ones; staff pass ?all=true to include retired definitions.
func GetRewards(c *fiber.Ctx) error {
	db := database.DB

	query := db.Order("books_required ASC")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var rewards []models.Reward
	if err := query.Find(&rewards).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch rewards", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Rewards fetched successfully", rewards)
}

// CreateReward adds a reward definition. Thresholds may coincide with an
// existing definition; every matching definition is granted when a student
// reaches the count.
func CreateReward(c *fiber.Ctx) error {
	db := database.DB

	body := new(struct {
		RewardName    string `json:"reward_name" validate:"required,max=100"`
		Description   string `json:"description"`
		BooksRequired int    `json:"books_required" validate:"required,min=1"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid reward data", err)
	}

	reward := models.Reward{
		RewardName:    body.RewardName,
		Description:   body.Description,
		BooksRequired: body.BooksRequired,
		IsActive:      true,
	}
	if result := db.Create(&reward); result.Error != nil {
		log.Printf("Error creating reward: %v\n", result.Error)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create reward", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Reward created successfully", reward)
}

// DeactivateReward retires a definition so it stops being granted. Existing
// grants are never revoked.
func DeactivateReward(c *fiber.Ctx) error {
	db := database.DB

	rewardID, err := strconv.Atoi(c.Params("reward_id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid reward ID", err)
	}

	result := db.Model(&models.Reward{}).
		Where("reward_id = ?", rewardID).
		Update("is_active", false)
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to deactivate reward", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "Reward not found", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Reward deactivated successfully", nil)
}

// GetMyRewards lists the rewards the authenticated student has earned, with
// names and earned dates.
func GetMyRewards(c *fiber.Ctx) error {
	db := database.DB

	authID, ok := c.Locals("user_id").(string)
	if !ok || authID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	userID, err := strconv.Atoi(authID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID in token", err)
	}

	var user models.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch user", err)
	}

	earned := []struct {
		RewardName    string    `json:"reward_name"`
		Description   string    `json:"description"`
		BooksRequired int       `json:"books_required"`
		EarnedDate    time.Time `json:"earned_date"`
	}{}
	err = db.Table("user_rewards ur").
		Select("r.reward_name, r.description, r.books_required, ur.earned_date").
		Joins("JOIN rewards r ON r.reward_id = ur.reward_id").
		Where("ur.user_id = ?", userID).
		Order("ur.earned_date ASC").
		Scan(&earned).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch earned rewards", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Earned rewards fetched successfully", earned)
}
