package chordload

import "time"

// ErrorClassifier determines whether an error represents a temporary
// condition worth retrying. Used only for connection establishment; row
// inserts are never retried.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy computes the delay schedule between retry attempts.
type BackoffStrategy interface {
	// NextDelay returns the delay before the given zero-based attempt.
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retry attempts.
	// Negative means unlimited.
	MaxAttempts() int
}
