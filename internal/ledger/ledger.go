// Package ledger implements the durable, append-only audit trail of
// records rejected during loading. The pipeline is write-only against the
// ledger; inspection happens out of band.
package ledger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vireodata/chordload/pkg/chordload"
)

// FileLedger appends one line per rejected record to a single file opened
// in append mode. Safe for concurrent use by multiple goroutines.
type FileLedger struct {
	mu  sync.Mutex
	f   *os.File
	now func() time.Time
}

// Open opens (creating if needed) the ledger file for append. Failure to
// open is a fatal misconfiguration, reported via ErrLedgerUnavailable.
func Open(path string) (*FileLedger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", chordload.ErrLedgerUnavailable, path, err)
	}
	return &FileLedger{f: f, now: time.Now}, nil
}

// Append writes one ledger line for a rejected record:
//
//	[INFO][<RFC 3339 UTC timestamp>] - <comma-joined field values>
func (l *FileLedger) Append(values ...any) error {
	line := fmt.Sprintf("[INFO][%s] - %s\n",
		l.now().UTC().Format(time.RFC3339),
		JoinValues(values))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.WriteString(line); err != nil {
		return fmt.Errorf("append ledger line: %w", err)
	}
	return nil
}

// Close releases the underlying file.
func (l *FileLedger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// JoinValues renders field values as a comma-joined string. Nil values
// (including typed nil pointers) render empty; timestamps render as
// RFC 3339 UTC.
func JoinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ",")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case *int:
		if val == nil {
			return ""
		}
		return fmt.Sprint(*val)
	case *float64:
		if val == nil {
			return ""
		}
		return fmt.Sprint(*val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
