// Package cli wires the chordload commands: flag parsing, connection
// resolution, and dependency assembly for the load pipeline.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordload",
	Short: "Batch loader for the chord streaming warehouse",
	Long: `chordload reads catalog exports and activity logs from JSON source
trees and loads them into the PostgreSQL star schema: providers, items,
time marks, actors, and activity facts.

Inserts are plain INSERTs; the schema's uniqueness constraints are the
sole dedup arbiter. Rejected rows land in an append-only rejection
ledger and the run keeps going, so re-running a batch is always safe.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - Rejection ledger could not be opened
  13 - One or more source units failed to load`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
