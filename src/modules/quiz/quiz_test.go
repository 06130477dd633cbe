package quiz

import (
	"fmt"
	"testing"

	"LibraryHub/src/core/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.QuizAttempt{},
		&models.Reward{},
		&models.UserReward{},
		&models.SystemLog{},
	)
	require.NoError(t, err)

	return db
}

func seedStudent(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		StudentID:    "S-1001",
		FullName:     "Ana Reyes",
		Email:        "ana.reyes@example.com",
		PasswordHash: "x",
		UserType:     models.UserTypeStudent,
		GradeLevel:   "5",
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBook(t *testing.T, db *gorm.DB, qr string) *models.Book {
	t.Helper()

	book := &models.Book{
		Title:       "Book " + qr,
		Author:      "Author",
		QRCode:      qr,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func seedReward(t *testing.T, db *gorm.DB, name string, booksRequired int) *models.Reward {
	t.Helper()

	reward := &models.Reward{
		RewardName:    name,
		BooksRequired: booksRequired,
		IsActive:      true,
	}
	require.NoError(t, db.Create(reward).Error)
	return reward
}

func submission(userID, bookID, total, correct int) *SubmitQuizInput {
	return &SubmitQuizInput{
		UserID:          userID,
		BookID:          bookID,
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		ScorePercentage: float64(correct) * 100 / float64(total),
		TimeTaken:       120,
	}
}

func attemptCount(t *testing.T, db *gorm.DB, userID int) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.QuizAttempt{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func seedBooks(t *testing.T, db *gorm.DB, n int) []*models.Book {
	t.Helper()

	books := make([]*models.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, seedBook(t, db, fmt.Sprintf("QR%03d", i+1)))
	}
	return books
}
