package helpers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Initialize a validator instance using go-playground's validator package
var Validator = validator.New()

// Validate checks the struct fields against the specified validation tags.
func Validate(val interface{}) error {
	return Validator.Struct(val)
}

// HandleSuccess sends the portal's JSON envelope for successful requests.
func HandleSuccess(context *fiber.Ctx, statusCode int, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return context.Status(statusCode).JSON(body)
}

// HandleError sends the portal's JSON envelope for failed requests. The quiz
// UI treats the absence of a data field as non-fatal and re-enables submission.
func HandleError(context *fiber.Ctx, statusCode int, message string, err error) error {
	if err != nil {
		return context.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": message,
			"error":   err.Error(),
		})
	}
	return context.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
