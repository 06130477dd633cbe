package quiz

import (
	"testing"

	"LibraryHub/src/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func recordDirect(t *testing.T, db *gorm.DB, userID, bookID int, score float64) {
	t.Helper()

	attempt := &models.QuizAttempt{
		UserID:          userID,
		BookID:          bookID,
		TotalQuestions:  10,
		CorrectAnswers:  int(score / 10),
		ScorePercentage: score,
	}
	require.NoError(t, db.Create(attempt).Error)
}

func TestBooksCompleted_DistinctBooksOnly(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	bookA := seedBook(t, db, "QR001")
	bookB := seedBook(t, db, "QR002")

	recordDirect(t, db, student.UserID, bookA.BookID, 80)
	recordDirect(t, db, student.UserID, bookA.BookID, 40)
	recordDirect(t, db, student.UserID, bookB.BookID, 20)

	count, err := BooksCompleted(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBooksCompleted_NoAttempts(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)

	count, err := BooksCompleted(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAverageScore_MeanOfAllAttempts(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	book := seedBook(t, db, "QR001")

	recordDirect(t, db, student.UserID, book.BookID, 80)
	recordDirect(t, db, student.UserID, book.BookID, 50)
	recordDirect(t, db, student.UserID, book.BookID, 90)

	avg, err := AverageScore(db, student.UserID)
	require.NoError(t, err)
	// mean(80, 50, 90) = 73.333..., rounded to one decimal
	assert.Equal(t, 73.3, avg)
}

func TestAverageScore_NoAttempts(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)

	avg, err := AverageScore(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestCountPriorAttempts(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	bookA := seedBook(t, db, "QR001")
	bookB := seedBook(t, db, "QR002")

	count, err := CountPriorAttempts(db, student.UserID, bookA.BookID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	recordDirect(t, db, student.UserID, bookA.BookID, 70)
	recordDirect(t, db, student.UserID, bookB.BookID, 70)

	count, err = CountPriorAttempts(db, student.UserID, bookA.BookID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAggregates_PerStudentIsolation(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	book := seedBook(t, db, "QR001")

	other := &models.User{
		StudentID:    "S-2002",
		FullName:     "Ben Santos",
		Email:        "ben.santos@example.com",
		PasswordHash: "x",
		UserType:     models.UserTypeStudent,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(other).Error)

	recordDirect(t, db, student.UserID, book.BookID, 100)
	recordDirect(t, db, other.UserID, book.BookID, 20)

	avg, err := AverageScore(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, avg)

	count, err := BooksCompleted(db, other.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
