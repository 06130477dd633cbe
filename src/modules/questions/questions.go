package questions

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"LibraryHub/src/core/database"
	"LibraryHub/src/core/helpers"
	"LibraryHub/src/core/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetQuizQuestions returns every question for a book, ordered by id, for the
// quiz-taking UI.
func GetQuizQuestions(c *fiber.Ctx) error {
	db := database.DB

	bookID, err := strconv.Atoi(c.Query("book_id"))
	if err != nil || bookID <= 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Book ID is required", err)
	}

	var questions []models.QuizQuestion
	err = db.Where("book_id = ?", bookID).
		Order("question_id ASC").
		Find(&questions).Error
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch quiz questions", err)
	}

	if len(questions) == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "No quiz questions found for this book", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Quiz questions fetched successfully", questions)
}

// CreateQuestion adds a single question to a book.
func CreateQuestion(c *fiber.Ctx) error {
	db := database.DB

	authID, ok := c.Locals("user_id").(string)
	if !ok || authID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	creatorID, err := strconv.Atoi(authID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID in token", err)
	}

	body := new(struct {
		BookID          int    `json:"book_id" validate:"required"`
		QuestionText    string `json:"question_text" validate:"required,max=500"`
		OptionA         string `json:"option_a" validate:"required,max=255"`
		OptionB         string `json:"option_b" validate:"required,max=255"`
		OptionC         string `json:"option_c" validate:"required,max=255"`
		OptionD         string `json:"option_d" validate:"required,max=255"`
		CorrectAnswer   string `json:"correct_answer" validate:"required,oneof=A B C D"`
		DifficultyLevel string `json:"difficulty_level"`
	})
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid question data", err)
	}

	var book models.Book
	if err := db.Where("book_id = ?", body.BookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid book ID", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to verify book", err)
	}

	difficulty := body.DifficultyLevel
	if difficulty == "" {
		difficulty = "medium"
	}

	question := models.QuizQuestion{
		BookID:          body.BookID,
		QuestionText:    body.QuestionText,
		OptionA:         body.OptionA,
		OptionB:         body.OptionB,
		OptionC:         body.OptionC,
		OptionD:         body.OptionD,
		CorrectAnswer:   body.CorrectAnswer,
		DifficultyLevel: difficulty,
		CreatedBy:       creatorID,
	}
	if result := db.Create(&question); result.Error != nil {
		log.Printf("Error creating question: %v\n", result.Error)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create question", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Question created successfully", question)
}

// DeleteQuestion removes one question by id.
func DeleteQuestion(c *fiber.Ctx) error {
	db := database.DB

	questionID, err := strconv.Atoi(c.Params("question_id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid question ID", err)
	}

	result := db.Where("question_id = ?", questionID).Delete(&models.QuizQuestion{})
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete question", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "Question not found", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Question deleted successfully", nil)
}

// ImportQuestions handles the bulk upload of a tag-delimited question file
// for one book (multipart field "questions_file", form field "book_id").
func ImportQuestions(c *fiber.Ctx) error {
	db := database.DB

	authID, ok := c.Locals("user_id").(string)
	if !ok || authID == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	creatorID, err := strconv.Atoi(authID)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid user ID in token", err)
	}

	bookID, err := strconv.Atoi(c.FormValue("book_id"))
	if err != nil || bookID <= 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Book ID is required", err)
	}

	var book models.Book
	if err := db.Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid book ID", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to verify book", err)
	}

	fileHeader, err := c.FormFile("questions_file")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Questions file is required", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Failed to open questions file", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Failed to read questions file", err)
	}

	parsed := ParseQuestionFile(string(content))
	if len(parsed) == 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No valid questions found in file", nil)
	}

	questionsAdded := 0
	for _, p := range parsed {
		question := models.QuizQuestion{
			BookID:          bookID,
			QuestionText:    p.QuestionText,
			OptionA:         p.OptionA,
			OptionB:         p.OptionB,
			OptionC:         p.OptionC,
			OptionD:         p.OptionD,
			CorrectAnswer:   p.CorrectAnswer,
			DifficultyLevel: "medium",
			CreatedBy:       creatorID,
		}
		if result := db.Create(&question); result.Error != nil {
			log.Printf("Error importing question for book %d: %v\n", bookID, result.Error)
			continue
		}
		questionsAdded++
	}

	entry := models.SystemLog{
		UserID:      creatorID,
		Action:      models.LogActionQuestionsImported,
		Description: fmt.Sprintf("Imported %d questions for book '%s'", questionsAdded, book.Title),
		IPAddress:   c.IP(),
	}
	if result := db.Create(&entry); result.Error != nil {
		log.Printf("Failed to write import log: %v\n", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK,
		fmt.Sprintf("%d questions imported successfully", questionsAdded),
		fiber.Map{"questions_added": questionsAdded})
}
