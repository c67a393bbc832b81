package pipeline

import (
	"context"
	"fmt"

	"github.com/vireodata/chordload/internal/normalize"
	"github.com/vireodata/chordload/internal/source"
	"github.com/vireodata/chordload/pkg/chordload"
)

// EventLoader loads one activity log unit: time marks first, then actors,
// then one activity fact per play event.
type EventLoader struct {
	store  chordload.Store
	ledger chordload.Ledger
	logger chordload.Logger
}

// NewEventLoader creates an EventLoader.
// Panics if any dependency is nil.
func NewEventLoader(store chordload.Store, ledger chordload.Ledger, logger chordload.Logger) *EventLoader {
	if store == nil {
		panic("pipeline: store cannot be nil")
	}
	if ledger == nil {
		panic("pipeline: ledger cannot be nil")
	}
	if logger == nil {
		panic("pipeline: logger cannot be nil")
	}
	return &EventLoader{store: store, ledger: ledger, logger: logger}
}

// LoadUnit reads an activity log unit, keeps its play events, and loads
// the three derived record streams. An empty unit, or one with no play
// events, is a successful no-op.
func (l *EventLoader) LoadUnit(ctx context.Context, path string) (chordload.UnitStats, error) {
	var stats chordload.UnitStats

	records, err := source.ReadEventUnit(path)
	if err != nil {
		return stats, fmt.Errorf("read event unit %s: %w", path, err)
	}

	plays := normalize.Filter(records, source.EventRecord.IsPlay)
	l.logger.Verbose("%s: %d of %d records are plays", path, len(plays), len(records))

	l.loadTimeMarks(ctx, plays, &stats)
	l.loadActors(ctx, plays, &stats)
	l.loadFacts(ctx, plays, &stats)

	return stats, nil
}

func (l *EventLoader) loadTimeMarks(ctx context.Context, plays []source.EventRecord, stats *chordload.UnitStats) {
	distinct := normalize.Clean(plays,
		func(r source.EventRecord) bool { return r.Timestamp != 0 },
		func(r source.EventRecord) int64 { return r.Timestamp },
	)

	for _, r := range distinct {
		tm := chordload.DeriveTimeMark(r.Timestamp)
		resolveRow(stats, l.store.InsertTimeMark(ctx, tm), l.logger, l.ledger, "time mark", tm.FieldValues())
	}
}

func (l *EventLoader) loadActors(ctx context.Context, plays []source.EventRecord, stats *chordload.UnitStats) {
	distinct := normalize.Clean(plays,
		func(r source.EventRecord) bool { return r.ActorID != "" },
		func(r source.EventRecord) source.LooseID { return r.ActorID },
	)

	for _, r := range distinct {
		actor := r.Actor()
		resolveRow(stats, l.store.InsertActor(ctx, actor), l.logger, l.ledger, "actor", actor.FieldValues())
	}
}

func (l *EventLoader) loadFacts(ctx context.Context, plays []source.EventRecord, stats *chordload.UnitStats) {
	for _, r := range plays {
		ref, err := l.lookupCatalog(ctx, r)
		if err != nil {
			l.logger.Error("catalog lookup failed (%v), skipping fact row for session %d", err, r.SessionID)
			stats.Record(chordload.OutcomeFailed)
			continue
		}

		fact := l.buildFact(r, ref)
		resolveRow(stats, l.store.InsertFact(ctx, fact), l.logger, l.ledger, "activity fact", fact.FieldValues())
	}
}

// lookupCatalog resolves the play's item and provider references. Absent
// reference fields simply never match, yielding null foreign keys.
func (l *EventLoader) lookupCatalog(ctx context.Context, r source.EventRecord) (chordload.CatalogRef, error) {
	var title, providerName string
	var duration float64

	if r.Title != nil {
		title = *r.Title
	}
	if r.ProviderName != nil {
		providerName = *r.ProviderName
	}
	if r.Duration != nil {
		duration = *r.Duration
	}

	return l.store.LookupCatalog(ctx, title, providerName, duration)
}

func (l *EventLoader) buildFact(r source.EventRecord, ref chordload.CatalogRef) chordload.ActivityFact {
	return chordload.ActivityFact{
		Timestamp:  chordload.EpochTime(r.Timestamp),
		ActorID:    string(r.ActorID),
		Tier:       r.Tier,
		ItemID:     ref.ItemID,
		ProviderID: ref.ProviderID,
		SessionID:  r.SessionID,
		Location:   r.Location,
		UserAgent:  r.UserAgent,
	}
}
