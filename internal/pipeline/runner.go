package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vireodata/chordload/pkg/chordload"
)

// Progress receives run milestones for user-facing narration. The logger
// carries diagnostics; Progress carries the original operator-facing
// counters.
type Progress interface {
	// TreeScanned reports a discovered source tree before its units load.
	TreeScanned(count int, root string)

	// UnitProcessed reports one finished unit as "done of total".
	UnitProcessed(done, total int)
}

// Tree pairs a source tree root with the loader that handles its units.
type Tree struct {
	Label  string
	Root   string
	Loader chordload.UnitLoader
}

// RunSummary aggregates the whole run.
type RunSummary struct {
	RunID       string
	Units       int
	FailedUnits int
	Stats       chordload.UnitStats
	Elapsed     time.Duration
}

// Runner drives loaders over source trees sequentially. Unit-level errors
// are narrated and counted; only scan failures and context cancellation
// abort the run.
type Runner struct {
	scanner  chordload.SourceScanner
	logger   chordload.Logger
	progress Progress
}

// NewRunner creates a Runner. progress may be nil to disable narration.
// Panics if scanner or logger is nil.
func NewRunner(scanner chordload.SourceScanner, logger chordload.Logger, progress Progress) *Runner {
	if scanner == nil {
		panic("pipeline: scanner cannot be nil")
	}
	if logger == nil {
		panic("pipeline: logger cannot be nil")
	}
	return &Runner{scanner: scanner, logger: logger, progress: progress}
}

// Run processes the given trees in order and returns the run summary.
// A run with failed units completes and then reports ErrLoadFailed so the
// caller can exit nonzero without losing the summary.
func (r *Runner) Run(ctx context.Context, trees ...Tree) (RunSummary, error) {
	summary := RunSummary{RunID: uuid.NewString()}
	start := time.Now()

	r.logger.Verbose("run %s starting", summary.RunID)

	for _, tree := range trees {
		if err := r.processTree(ctx, tree, &summary); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}
	}

	summary.Elapsed = time.Since(start)

	if summary.FailedUnits > 0 {
		return summary, fmt.Errorf("%d of %d units failed: %w", summary.FailedUnits, summary.Units, chordload.ErrLoadFailed)
	}
	return summary, nil
}

func (r *Runner) processTree(ctx context.Context, tree Tree, summary *RunSummary) error {
	result, err := r.scanner.ScanTree(tree.Root)
	if err != nil {
		return fmt.Errorf("scan %s tree: %w", tree.Label, err)
	}

	total := len(result.Units)
	r.logger.Info("%d files found in %s", total, tree.Root)
	if r.progress != nil {
		r.progress.TreeScanned(total, tree.Root)
	}

	for i, unit := range result.Units {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run cancelled: %w", err)
		}

		r.logger.Verbose("loading %s (%d bytes, sha256 %s)", unit.Path, unit.Size, unit.Checksum)

		summary.Units++
		stats, err := tree.Loader.LoadUnit(ctx, unit.Path)
		summary.Stats.Merge(stats)
		if err != nil {
			summary.FailedUnits++
			r.logger.Error("unit %s failed: %v", unit.Path, err)
		}

		if r.progress != nil {
			r.progress.UnitProcessed(i+1, total)
		}
	}

	return nil
}
