package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Source units can carry long user-agent strings; default bufio limits are
// too tight for some exports.
const maxLineBytes = 1024 * 1024

// ReadCatalogUnit decodes a catalog source unit (JSON lines, typically a
// single record per file).
func ReadCatalogUnit(path string) ([]CatalogRecord, error) {
	return readLines[CatalogRecord](path)
}

// ReadEventUnit decodes an activity log source unit (JSON lines, one event
// per line).
func ReadEventUnit(path string) ([]EventRecord, error) {
	return readLines[EventRecord](path)
}

func readLines[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source unit: %w", err)
	}
	defer f.Close()

	var records []T

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var rec T
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source unit: %w", err)
	}

	return records, nil
}
