package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAttempt_Valid(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	book := seedBook(t, db, "QR001")

	user, gotBook, err := ValidateAttempt(db, submission(student.UserID, book.BookID, 10, 8))
	require.NoError(t, err)
	assert.Equal(t, student.UserID, user.UserID)
	assert.Equal(t, book.BookID, gotBook.BookID)
}

func TestValidateAttempt_Rejections(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	book := seedBook(t, db, "QR001")

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, err := ValidateAttempt(db, submission(999, book.BookID, 10, 8))
		assert.ErrorIs(t, err, ErrInvalidStudent)
	})

	t.Run("UnknownBook", func(t *testing.T) {
		_, _, err := ValidateAttempt(db, submission(student.UserID, 999, 10, 8))
		assert.ErrorIs(t, err, ErrInvalidBook)
	})

	t.Run("ZeroQuestions", func(t *testing.T) {
		in := submission(student.UserID, book.BookID, 10, 8)
		in.TotalQuestions = 0
		_, _, err := ValidateAttempt(db, in)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
	})

	t.Run("NegativeCorrect", func(t *testing.T) {
		in := submission(student.UserID, book.BookID, 10, 8)
		in.CorrectAnswers = -1
		_, _, err := ValidateAttempt(db, in)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
	})

	t.Run("CorrectExceedsTotal", func(t *testing.T) {
		in := submission(student.UserID, book.BookID, 10, 8)
		in.CorrectAnswers = 11
		_, _, err := ValidateAttempt(db, in)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
	})

	t.Run("NegativeTimeTaken", func(t *testing.T) {
		in := submission(student.UserID, book.BookID, 10, 8)
		in.TimeTaken = -5
		_, _, err := ValidateAttempt(db, in)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
	})

	t.Run("TamperedPercentage", func(t *testing.T) {
		in := submission(student.UserID, book.BookID, 10, 5)
		in.ScorePercentage = 90 // 5/10 is 50%, not 90%
		_, _, err := ValidateAttempt(db, in)
		assert.ErrorIs(t, err, ErrScoreMismatch)
	})
}

func TestValidateAttempt_RoundingTolerance(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	book := seedBook(t, db, "QR001")

	// 2/3 correct is 66.666...; a client rounding to 66.7 must pass
	in := submission(student.UserID, book.BookID, 3, 2)
	in.ScorePercentage = 66.7
	_, _, err := ValidateAttempt(db, in)
	require.NoError(t, err)

	// A full point off is outside tolerance
	in.ScorePercentage = 68.0
	_, _, err = ValidateAttempt(db, in)
	assert.ErrorIs(t, err, ErrScoreMismatch)
}
