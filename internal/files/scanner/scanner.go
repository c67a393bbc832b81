package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vireodata/chordload/internal/checksum"
	"github.com/vireodata/chordload/pkg/chordload"
)

// Scanner discovers source units under a root directory.
// Safe for concurrent use as long as the provided calculator is.
type Scanner struct {
	calculator checksum.Calculator
}

// NewScanner creates a new source scanner with the given checksum
// calculator. Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{calculator: calculator}
}

// ScanTree recursively walks root and returns every eligible source unit
// as an absolute path, in lexicographic order.
func (s *Scanner) ScanTree(root string) (chordload.ScanResult, error) {
	var units []chordload.SourceUnit

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path %q: %w", path, err)
		}

		if d.IsDir() {
			// Hidden directories hold editor and VCS state, never data.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), chordload.SourceUnitExt) {
			return nil
		}

		unit, err := s.processFile(path)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", path, err)
		}

		units = append(units, unit)
		return nil
	})
	if err != nil {
		return chordload.ScanResult{}, fmt.Errorf("failed to scan directory %q: %w", root, err)
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Path < units[j].Path })

	return chordload.ScanResult{Units: units}, nil
}

// processFile reads a discovered file and generates its unit metadata.
func (s *Scanner) processFile(path string) (chordload.SourceUnit, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return chordload.SourceUnit{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return chordload.SourceUnit{}, fmt.Errorf("failed to read file: %w", err)
	}

	return chordload.SourceUnit{
		Path:     abs,
		Size:     int64(len(content)),
		Checksum: s.calculator.Calculate(content),
	}, nil
}
