package quiz

import "errors"

// Rejection reasons surfaced by the submission transaction. Anything else
// coming out of the storage layer is treated as a retryable persistence
// failure and rolls the whole transaction back.
var (
	ErrInvalidStudent  = errors.New("invalid user account, please login again")
	ErrInvalidBook     = errors.New("invalid book ID")
	ErrScoreOutOfRange = errors.New("invalid quiz data values")
	ErrScoreMismatch   = errors.New("score percentage does not match submitted answers")
	ErrUserMismatch    = errors.New("user ID mismatch")
)
