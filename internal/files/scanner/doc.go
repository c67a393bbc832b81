// Package scanner discovers source units from a directory tree.
//
// A source unit is a single JSON-lines file. The scanner walks the root
// recursively, skips hidden directories, and returns units in
// lexicographic path order so batch runs are deterministic across
// filesystems.
package scanner
