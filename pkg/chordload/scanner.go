package chordload

// SourceScanner discovers source units under a root directory.
// Implementations must be safe for concurrent use by multiple goroutines.
type SourceScanner interface {
	// ScanTree recursively walks root and returns every eligible source
	// unit in stable (lexicographic) order.
	ScanTree(root string) (ScanResult, error)
}

// ScanResult contains the results of scanning a source tree.
type ScanResult struct {
	Units []SourceUnit
}

// SourceUnit is one discovered input file.
type SourceUnit struct {
	// Path is the absolute path of the unit.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Checksum is the SHA-256 digest of the unit's raw content, carried
	// for audit narration.
	Checksum string
}
