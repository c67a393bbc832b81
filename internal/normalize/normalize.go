// Package normalize implements the record cleaning rules applied before
// any load: dropping records that are missing required identifying fields
// and collapsing duplicates so only the first occurrence per identity key
// survives. No value imputation happens here; every surviving record is
// byte-identical to its input.
package normalize

// Filter returns the records for which required reports true, preserving
// input order. The input slice is never mutated.
func Filter[T any](records []T, required func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if required(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Dedup returns the records with only the first occurrence per identity
// key kept, preserving input order. The input slice is never mutated.
func Dedup[T any, K comparable](records []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(records))
	out := make([]T, 0, len(records))
	for _, rec := range records {
		k := key(rec)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// Clean applies Filter then Dedup: records failing the required predicate
// are removed, and among the remainder only the first occurrence per
// identity key survives. An empty result is valid.
func Clean[T any, K comparable](records []T, required func(T) bool, key func(T) K) []T {
	return Dedup(Filter(records, required), key)
}
