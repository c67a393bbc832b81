package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vireodata/chordload/internal/cli"
	"github.com/vireodata/chordload/pkg/chordload"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(chordload.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(chordload.ExitCodeForError(err))
	}
}
