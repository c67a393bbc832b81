package chordload

import (
	"context"
	"errors"
)

// Outcome is the terminal state of a single insert attempt. Every row of a
// unit reaches exactly one outcome; none of them aborts the unit.
type Outcome int

const (
	// OutcomeInserted means the row was written and committed.
	OutcomeInserted Outcome = iota

	// OutcomeDuplicate means the store rejected the row by uniqueness
	// constraint; the row is appended to the rejection ledger and skipped.
	OutcomeDuplicate

	// OutcomeFailed means the insert failed for any other reason; the row
	// is narrated to diagnostics and skipped.
	OutcomeFailed
)

// OutcomeOf classifies an insert attempt's error into its terminal outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeInserted
	case errors.Is(err, ErrDuplicateKey):
		return OutcomeDuplicate
	default:
		return OutcomeFailed
	}
}

// UnitStats aggregates row outcomes for one source unit.
type UnitStats struct {
	Inserted   int
	Duplicates int
	Failed     int
}

// Record tallies one outcome.
func (s *UnitStats) Record(o Outcome) {
	switch o {
	case OutcomeInserted:
		s.Inserted++
	case OutcomeDuplicate:
		s.Duplicates++
	case OutcomeFailed:
		s.Failed++
	}
}

// Merge adds another unit's tallies into s.
func (s *UnitStats) Merge(other UnitStats) {
	s.Inserted += other.Inserted
	s.Duplicates += other.Duplicates
	s.Failed += other.Failed
}

// Rows returns the total number of row attempts counted.
func (s UnitStats) Rows() int {
	return s.Inserted + s.Duplicates + s.Failed
}

// UnitLoader transforms and loads one discovered source unit. Row-level
// rejections are handled internally (ledgered or narrated) and reflected
// in the returned stats; the error return is reserved for unit-level
// conditions such as an unreadable file or an empty catalog unit.
type UnitLoader interface {
	LoadUnit(ctx context.Context, path string) (UnitStats, error)
}

// Ledger is the append-only audit trail of rejected records. Append takes
// the rejected record's field values in statement parameter order.
// Implementations must be safe for concurrent use.
type Ledger interface {
	Append(values ...any) error
}
