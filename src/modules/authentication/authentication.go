package authentication

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"LibraryHub/src/core/config"
	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"LibraryHub/src/core/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenLifetime = time.Hour

// issueJwtToken generates a JWT token for authenticated users.
func issueJwtToken(userID int, name string, userType string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["sub"] = strconv.Itoa(userID)
	claims["name"] = name
	claims["user_type"] = userType
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(24 * time.Hour).Unix()

	secretKey := config.Config("JWT_SECRET")
	return token.SignedString([]byte(secretKey))
}

// SignUp handles student registration. Staff accounts (admin, librarian,
// teacher) are provisioned by an admin, never through this endpoint.
func SignUp(c *fiber.Ctx) error {
	db := database.DB

	body := new(struct {
		StudentID  string `json:"student_id" validate:"required,max=50"`
		FullName   string `json:"full_name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required,min=8"`
		GradeLevel string `json:"grade_level" validate:"required,max=20"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid signup data", err)
	}

	// Hash password
	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	user := models.User{
		StudentID:    body.StudentID,
		FullName:     body.FullName,
		Email:        body.Email,
		PasswordHash: string(hashedPwd),
		UserType:     models.UserTypeStudent,
		GradeLevel:   body.GradeLevel,
		Status:       models.UserStatusActive,
	}

	if result := db.Create(&user); result.Error != nil {
		log.Println("Error creating user:", result.Error)
		return helpers.HandleError(c, fiber.StatusConflict, "Failed to create account. Student ID or email may already be registered.", result.Error)
	}

	token, err := issueJwtToken(user.UserID, user.FullName, user.UserType)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Account created successfully", fiber.Map{
		"token":     token,
		"user_id":   user.UserID,
		"full_name": user.FullName,
		"user_type": user.UserType,
	})
}

// SignIn authenticates any account type. Inactive accounts are rejected even
// with a correct password.
func SignIn(c *fiber.Ctx) error {
	db := database.DB

	body := new(struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid login data", err)
	}

	user := new(models.User)
	if result := db.Where("email = ?", body.Email).First(user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", err)
	}

	if user.Status != models.UserStatusActive {
		return helpers.HandleError(c, fiber.StatusForbidden, "This account has been deactivated", nil)
	}

	token, err := issueJwtToken(user.UserID, user.FullName, user.UserType)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", fiber.Map{
		"token":     token,
		"user_id":   user.UserID,
		"full_name": user.FullName,
		"user_type": user.UserType,
	})
}

// ForgotPassword issues a single-use reset token. The response never reveals
// whether the email is registered.
func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB

	body := new(struct {
		Email string `json:"email" validate:"required,email"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid email", err)
	}

	user := new(models.User)
	err := db.Where("email = ?", body.Email).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Same response as the success path
		return helpers.HandleSuccess(c, fiber.StatusOK, "If the email is registered, a reset link has been sent", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to process request", err)
	}

	reset := models.PasswordReset{
		Token:     uuid.New(),
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(resetTokenLifetime),
	}
	if result := db.Create(&reset); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create reset token", result.Error)
	}

	// Token delivery is handled by the mailer; for now it is logged so staff
	// can relay it manually.
	log.Printf("Password reset token for %s: %s\n", user.Email, reset.Token)

	return helpers.HandleSuccess(c, fiber.StatusOK, "If the email is registered, a reset link has been sent", nil)
}

// ResetPassword consumes a reset token and sets the new password.
func ResetPassword(c *fiber.Ctx) error {
	db := database.DB

	body := new(struct {
		Token       string `json:"token" validate:"required,uuid"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid reset data", err)
	}

	tokenID, err := uuid.Parse(body.Token)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid reset token", err)
	}

	reset := new(models.PasswordReset)
	err = db.Where("token = ? AND used = ?", tokenID, false).First(reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid or expired reset token", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to verify reset token", err)
	}

	if time.Now().After(reset.ExpiresAt) {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid or expired reset token", nil)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("user_id = ?", reset.UserID).
			Update("password_hash", string(hashedPwd)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PasswordReset{}).
			Where("token = ?", reset.Token).
			Update("used", true).Error; err != nil {
			return err
		}
		entry := models.SystemLog{
			UserID:      reset.UserID,
			Action:      models.LogActionPasswordReset,
			Description: fmt.Sprintf("Password reset via token %s", reset.Token),
			IPAddress:   c.IP(),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to reset password", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Password reset successfully", nil)
}
