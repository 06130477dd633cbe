package middleware

import (
	"LibraryHub/src/core/config"
	"LibraryHub/src/core/helpers"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected middleware for validating JWT tokens
func Protected() fiber.Handler {
	jwtSecret := config.Config("JWT_SECRET")
	if jwtSecret == "" {
		panic("JWT_SECRET is not set in the environment variables") // Panic to prevent startup
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(jwtSecret)},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			// Extract user claims and attach user_id and user_type to the context
			user := c.Locals("user").(*jwt.Token)
			claims := user.Claims.(jwt.MapClaims)
			userID, ok := claims["sub"].(string)
			if !ok {
				return helpers.HandleError(c, fiber.StatusUnauthorized, "User ID missing in token", nil)
			}
			c.Locals("user_id", userID)
			if userType, ok := claims["user_type"].(string); ok {
				c.Locals("user_type", userType)
			}
			return c.Next()
		},
	})
}

// RequireRole restricts a route to the given account types. Runs after
// Protected has attached user_type to the context.
func RequireRole(allowedTypes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, ok := c.Locals("user_type").(string)
		if !ok || userType == "" {
			return helpers.HandleError(c, fiber.StatusForbidden, "Account type missing in token", nil)
		}
		for _, allowed := range allowedTypes {
			if userType == allowed {
				return c.Next()
			}
		}
		return helpers.HandleError(c, fiber.StatusForbidden, "You are not allowed to access this resource", nil)
	}
}

// jwtError handles JWT-related errors
func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or malformed JWT", err)
	}
	return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired JWT", err)
}
