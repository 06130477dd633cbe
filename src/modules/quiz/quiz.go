package quiz

import (
	"errors"
	"log"
	"strconv"

	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"github.com/gofiber/fiber/v2"
)

// SubmitQuizResultHandler handles POST /quiz/submit. The authenticated user
// id from the JWT must match the id in the payload; the token is the source
// of truth, the body value is only cross-checked.
func SubmitQuizResultHandler(c *fiber.Ctx) error {
	db := database.DB

	authID, ok := c.Locals("user_id").(string)
	if !ok || authID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	tokenUserID, err := strconv.Atoi(authID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID in token", err)
	}

	body := new(SubmitQuizInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid quiz data - could not parse JSON", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid quiz data values", err)
	}

	if body.UserID != tokenUserID {
		log.Printf("User ID mismatch - token: %d, submitted: %d\n", tokenUserID, body.UserID)
		return helpers.HandleError(c, fiber.StatusForbidden, ErrUserMismatch.Error(), nil)
	}

	result, err := SubmitQuiz(db, body, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStudent):
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user account. Please login again.", nil)
		case errors.Is(err, ErrInvalidBook):
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid book ID", nil)
		case errors.Is(err, ErrScoreOutOfRange):
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid quiz data values", nil)
		case errors.Is(err, ErrScoreMismatch):
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid quiz data values", nil)
		default:
			log.Printf("Failed to save quiz result for user %d: %v\n", body.UserID, err)
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to save quiz result", err)
		}
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz result saved successfully", result)
}
