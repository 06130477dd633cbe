package books

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"LibraryHub/src/core/models"
	"LibraryHub/src/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// AddBook registers a new book, generates its QR code image, and stores the
// image so staff can print it. The QR payload is the book's qr_code string,
// which students scan at check-in.
func AddBook(c *fiber.Ctx) error {
	db := database.DB

	authID, ok := c.Locals("user_id").(string)
	if !ok || authID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	staffID, err := strconv.Atoi(authID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID in token", err)
	}

	body := new(struct {
		Title                 string `json:"title" validate:"required"`
		Author                string `json:"author" validate:"required"`
		QRCode                string `json:"qr_code" validate:"required,max=100"`
		Genre                 string `json:"genre"`
		RecommendedGradeLevel string `json:"recommended_grade_level"`
		TotalPages            int    `json:"total_pages"`
		DifficultyLevel       string `json:"difficulty_level"`
		Description           string `json:"description"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid book data", err)
	}

	body.QRCode = strings.TrimSpace(body.QRCode)

	// QR codes are unique; a duplicate means the label is already in use.
	var existing models.Book
	err = db.Where("qr_code = ?", body.QRCode).First(&existing).Error
	if err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "QR code already exists. Please use a unique QR code.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to check QR code", err)
	}

	difficulty := body.DifficultyLevel
	if difficulty == "" {
		difficulty = "medium"
	}

	book := models.Book{
		Title:                 body.Title,
		Author:                body.Author,
		QRCode:                body.QRCode,
		Genre:                 body.Genre,
		RecommendedGradeLevel: body.RecommendedGradeLevel,
		TotalPages:            body.TotalPages,
		DifficultyLevel:       difficulty,
		Description:           body.Description,
		IsAvailable:           true,
	}

	// Generate and store the printable QR image. The book record is still
	// created if storage is unreachable; staff can regenerate the image later.
	qrBytes, qrErr := qrcode.Encode(body.QRCode, qrcode.Medium, 300)
	if qrErr != nil {
		log.Printf("Failed to generate QR image for %s: %v\n", body.QRCode, qrErr)
	} else {
		storagePath := fmt.Sprintf("qr_codes/%s.png", body.QRCode)
		path, url, _, uploadErr := utils.UploadToSupabaseStorage(qrBytes, storagePath)
		if uploadErr != nil {
			log.Printf("Failed to upload QR image for %s: %v\n", body.QRCode, uploadErr)
		} else {
			book.QRCodeStoragePath = path
			book.QRCodeURL = url
		}
	}

	if result := db.Create(&book); result.Error != nil {
		log.Printf("Error creating book: %v\n", result.Error)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to add book", result.Error)
	}

	entry := models.SystemLog{
		UserID:      staffID,
		Action:      models.LogActionBookAdded,
		Description: fmt.Sprintf("Added book: %s by %s (QR: %s)", book.Title, book.Author, book.QRCode),
		IPAddress:   c.IP(),
	}
	if result := db.Create(&entry); result.Error != nil {
		log.Printf("Failed to write book add log: %v\n", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Book added successfully", book)
}

// GetBooks lists all books, newest first.
func GetBooks(c *fiber.Ctx) error {
	db := database.DB

	var books []models.Book
	if err := db.Order("created_at DESC").Find(&books).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch books", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Books fetched successfully", books)
}

// GetBookByQR resolves a scanned QR code to its book record. This is what
// the student check-in flow calls right after a scan.
func GetBookByQR(c *fiber.Ctx) error {
	db := database.DB

	qrCode := strings.TrimSpace(c.Query("qr_code"))
	if qrCode == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "QR code is required", nil)
	}

	var book models.Book
	err := db.Where("qr_code = ?", qrCode).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusNotFound, "Book not found for this QR code", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to look up book", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Book found", book)
}

// GetBookByID returns one book by its id.
func GetBookByID(c *fiber.Ctx) error {
	db := database.DB

	bookID, err := strconv.Atoi(c.Params("book_id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid book ID", err)
	}

	var book models.Book
	err = db.Where("book_id = ?", bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusNotFound, "Book not found", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch book", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Book fetched successfully", book)
}

// DeleteBook removes a book and its stored QR image.
func DeleteBook(c *fiber.Ctx) error {
	db := database.DB

	bookID, err := strconv.Atoi(c.Params("book_id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid book ID", err)
	}

	var book models.Book
	err = db.Where("book_id = ?", bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusNotFound, "Book not found", nil)
	}
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch book", err)
	}

	if book.QRCodeStoragePath != "" {
		if err := utils.DeleteFromSupabaseStorage(book.QRCodeStoragePath); err != nil {
			log.Printf("Failed to delete QR image %s: %v\n", book.QRCodeStoragePath, err)
		}
	}

	if result := db.Delete(&book); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete book", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Book deleted successfully", nil)
}
