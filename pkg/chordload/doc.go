// Package chordload defines the public types and interfaces of the
// chordload batch loader: the normalized entity records, the store and
// ledger contracts, unit loader interfaces, sentinel errors, and the
// semantic exit codes used by the CLI.
//
// Concrete implementations live under internal/; this package carries no
// behavior beyond entity derivation and configuration validation, so that
// embedding applications can drive the pipeline against their own store
// or ledger implementations.
package chordload
