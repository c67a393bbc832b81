package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr redirects stderr for the duration of fn and returns what
// was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestConsoleLogger_Verbose(t *testing.T) {
	out := captureStderr(t, func() {
		NewConsoleLogger(true).Verbose("scanning %s", "root")
	})
	assert.Contains(t, out, "[VERBOSE] scanning root")
}

func TestConsoleLogger_Verbose_Disabled(t *testing.T) {
	out := captureStderr(t, func() {
		NewConsoleLogger(false).Verbose("hidden")
	})
	assert.Empty(t, out)
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	out := captureStderr(t, func() {
		l := NewConsoleLogger(false)
		l.Info("14 files found in %s", "data/catalog")
		l.Error("row skipped: %v", "boom")
	})
	assert.Contains(t, out, "14 files found in data/catalog")
	assert.Contains(t, out, "[ERROR] row skipped: boom")
}

func TestConsoleLogger_FormatVerbs_NoArgs(t *testing.T) {
	// Messages carrying literal % must not be re-interpreted when no args
	// are supplied.
	out := captureStderr(t, func() {
		NewConsoleLogger(false).Info("progress 100%")
	})
	assert.Contains(t, out, "progress 100%")
}

func TestConsoleLogger_ConcurrentWrites(t *testing.T) {
	out := captureStderr(t, func() {
		l := NewConsoleLogger(false)
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				l.Info("line")
			}()
		}
		wg.Wait()
	})
	assert.Equal(t, 20, strings.Count(out, "line"))
}
