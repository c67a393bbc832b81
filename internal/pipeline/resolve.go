package pipeline

import (
	"github.com/vireodata/chordload/internal/ledger"
	"github.com/vireodata/chordload/pkg/chordload"
)

// resolveRow applies the uniform per-row policy to one insert attempt and
// tallies its outcome. Duplicates go to the rejection ledger; other
// failures are narrated to diagnostics. Neither stops the caller.
func resolveRow(stats *chordload.UnitStats, err error, lg chordload.Logger, led chordload.Ledger, entity string, values []any) {
	outcome := chordload.OutcomeOf(err)
	stats.Record(outcome)

	switch outcome {
	case chordload.OutcomeInserted:
		lg.Verbose("%s row written", entity)
	case chordload.OutcomeDuplicate:
		lg.Error("duplicate %s rejected: %s", entity, ledger.JoinValues(values))
		if appendErr := led.Append(values...); appendErr != nil {
			lg.Error("ledger append failed: %v", appendErr)
		}
	case chordload.OutcomeFailed:
		lg.Error("%s insert failed (%v): %s", entity, err, ledger.JoinValues(values))
	}
}
