package chordload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load run completed
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to the target database
	ExitLedgerError     = 12 // Rejection ledger could not be opened
	ExitLoadFailed      = 13 // A source tree could not be processed
)

const (
	// PlayAction is the page/action marker identifying a play event in raw
	// activity logs. Records carrying any other action are discarded before
	// transformation.
	PlayAction = "NextSong"

	// SourceUnitExt is the file extension of discoverable source units.
	SourceUnitExt = ".json"

	// DefaultLedgerPath is the rejection ledger location when the
	// configuration does not name one.
	DefaultLedgerPath = "rejected_records.log"

	// DefaultRetryInitialDelay is the default initial delay before the first
	// connection retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between connection
	// retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of connection
	// retry attempts. Row inserts are never retried; a failed row is
	// recovered by re-running the batch.
	DefaultRetryMaxAttempts = 3
)
