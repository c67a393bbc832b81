// Package logging provides concrete implementations of the
// chordload.Logger interface.
package logging
