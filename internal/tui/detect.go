// Package tui renders operator-facing progress and run summaries, styled
// when a human is at the terminal and plain when output is piped.
package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for chordload.
type Mode int

const (
	// ModeNonInteractive is used for scheduled pipelines, scripts, and
	// piped output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether chordload should style its output.
//
// Returns ModeNonInteractive if:
//   - stdout is not a terminal (piped output, scheduled runs)
//   - CHORDLOAD_NON_INTERACTIVE=1 is set
//   - CI=true is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("CHORDLOAD_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
