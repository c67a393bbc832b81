package pipeline

import (
	"context"
	"fmt"

	"github.com/vireodata/chordload/internal/source"
	"github.com/vireodata/chordload/pkg/chordload"
)

// CatalogLoader loads one catalog source unit: the unit's provider record
// first, then its item record, so the item's provider reference always
// resolves.
type CatalogLoader struct {
	store  chordload.Store
	ledger chordload.Ledger
	logger chordload.Logger
}

// NewCatalogLoader creates a CatalogLoader.
// Panics if any dependency is nil.
func NewCatalogLoader(store chordload.Store, ledger chordload.Ledger, logger chordload.Logger) *CatalogLoader {
	if store == nil {
		panic("pipeline: store cannot be nil")
	}
	if ledger == nil {
		panic("pipeline: ledger cannot be nil")
	}
	if logger == nil {
		panic("pipeline: logger cannot be nil")
	}
	return &CatalogLoader{store: store, ledger: ledger, logger: logger}
}

// LoadUnit reads a catalog unit and loads its first record. Units carry one
// record each in practice; extra records are skipped with a warning so a
// malformed export cannot silently widen a unit's footprint.
func (l *CatalogLoader) LoadUnit(ctx context.Context, path string) (chordload.UnitStats, error) {
	var stats chordload.UnitStats

	records, err := source.ReadCatalogUnit(path)
	if err != nil {
		return stats, fmt.Errorf("read catalog unit %s: %w", path, err)
	}
	if len(records) == 0 {
		return stats, fmt.Errorf("%s: %w", path, chordload.ErrEmptyUnit)
	}
	if len(records) > 1 {
		l.logger.Error("catalog unit %s carries %d records, loading the first only", path, len(records))
	}

	record := records[0]

	provider := record.Provider()
	resolveRow(&stats, l.store.InsertProvider(ctx, provider), l.logger, l.ledger, "provider", provider.FieldValues())

	item := record.Item()
	resolveRow(&stats, l.store.InsertItem(ctx, item), l.logger, l.ledger, "item", item.FieldValues())

	return stats, nil
}
