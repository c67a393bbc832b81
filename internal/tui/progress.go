package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vireodata/chordload/internal/pipeline"
)

// Printer narrates run milestones to the operator. It implements
// pipeline.Progress. Styling follows the detected mode; non-interactive
// output is plain text, line-buffered, grep-friendly.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a Printer writing to stdout, styled per DetectMode.
func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, styled: IsInteractive()}
}

// NewPrinterTo creates a Printer with an explicit writer and styling flag.
func NewPrinterTo(out io.Writer, styled bool) *Printer {
	return &Printer{out: out, styled: styled}
}

func (p *Printer) TreeScanned(count int, root string) {
	msg := fmt.Sprintf("%d files found in %s", count, root)
	if p.styled {
		msg = TitleStyle.Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}

func (p *Printer) UnitProcessed(done, total int) {
	msg := fmt.Sprintf("%d/%d files processed.", done, total)
	if p.styled {
		msg = ProgressStyle.Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Summary prints the end-of-run report.
func (p *Printer) Summary(s pipeline.RunSummary) {
	fmt.Fprintf(p.out, "\nRun %s finished in %s\n", s.RunID, s.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(p.out, "  units processed: %d\n", s.Units)
	fmt.Fprintf(p.out, "  rows written:    %d\n", s.Stats.Inserted)
	fmt.Fprintf(p.out, "  duplicates:      %d\n", s.Stats.Duplicates)

	failures := fmt.Sprintf("  failed rows: %d, failed units: %d", s.Stats.Failed, s.FailedUnits)
	switch {
	case s.FailedUnits > 0 || s.Stats.Failed > 0:
		if p.styled {
			failures = ErrorStyle.Render(failures)
		}
		fmt.Fprintln(p.out, failures)
	default:
		ok := "  no failures"
		if p.styled {
			ok = SuccessStyle.Render(ok)
		}
		fmt.Fprintln(p.out, ok)
	}
}
