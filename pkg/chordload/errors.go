package chordload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := store.InsertProvider(ctx, p)
//	if errors.Is(err, chordload.ErrDuplicateKey) {
//	    // Record already present; ledger it and continue.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrDuplicateKey indicates an insert was rejected by a uniqueness
	// constraint. This is a recoverable, per-row condition: the record is
	// already present by key, so the row is ledgered and skipped.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrLedgerUnavailable indicates the rejection ledger could not be
	// opened for append. The ledger is the durable audit trail, so running
	// without it is a misconfiguration, not a degraded mode.
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrLoadFailed indicates a source tree could not be processed end to
	// end (discovery failure or cancellation, not per-row rejections).
	ErrLoadFailed = errors.New("load failed")

	// ErrEmptyUnit indicates a catalog source unit contained no records.
	ErrEmptyUnit = errors.New("source unit contains no records")

	// ErrUnsupportedAuthMethod indicates the requested authentication method
	// is not supported.
	ErrUnsupportedAuthMethod = errors.New("unsupported auth method")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedAuthMethod):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrLedgerUnavailable):
		return ExitLedgerError
	case errors.Is(err, ErrLoadFailed):
		return ExitLoadFailed
	}

	// Common connection error patterns from pgx that are not wrapped by a
	// sentinel.
	errStr := err.Error()
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
