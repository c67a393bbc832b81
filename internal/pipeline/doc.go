// Package pipeline implements the transform-and-load core: the catalog
// loader, the event loader, and the batch runner that drives them over
// discovered source trees.
//
// Row isolation is uniform across both loaders. Every insert attempt
// reaches one of three terminal outcomes: written, rejected as a duplicate
// (appended to the rejection ledger), or failed (narrated to diagnostics).
// No outcome aborts the unit, and no unit failure aborts the run.
package pipeline
