package pipeline

import (
	"context"
	"strings"
	"sync"

	"github.com/vireodata/chordload/pkg/chordload"
)

// mockStore records every call in order and lets tests script per-entity
// failures keyed by the entity's primary identifier.
type mockStore struct {
	mu    sync.Mutex
	calls []string
	facts []chordload.ActivityFact

	providerErrs map[string]error
	itemErrs     map[string]error
	timeMarkErrs map[int64]error
	actorErrs    map[string]error
	factErr      error

	lookupRef chordload.CatalogRef
	lookupErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		providerErrs: make(map[string]error),
		itemErrs:     make(map[string]error),
		timeMarkErrs: make(map[int64]error),
		actorErrs:    make(map[string]error),
	}
}

func (m *mockStore) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockStore) InsertProvider(_ context.Context, p chordload.Provider) error {
	m.record("provider:" + p.ID)
	return m.providerErrs[p.ID]
}

func (m *mockStore) InsertItem(_ context.Context, it chordload.Item) error {
	m.record("item:" + it.ID)
	return m.itemErrs[it.ID]
}

func (m *mockStore) InsertTimeMark(_ context.Context, tm chordload.TimeMark) error {
	m.record("timemark:" + tm.Timestamp.UTC().Format("15:04:05"))
	return m.timeMarkErrs[tm.Timestamp.UnixMilli()]
}

func (m *mockStore) InsertActor(_ context.Context, a chordload.Actor) error {
	m.record("actor:" + a.ID)
	return m.actorErrs[a.ID]
}

func (m *mockStore) InsertFact(_ context.Context, f chordload.ActivityFact) error {
	m.record("fact:" + f.ActorID)
	m.mu.Lock()
	m.facts = append(m.facts, f)
	m.mu.Unlock()
	return m.factErr
}

func (m *mockStore) LookupCatalog(_ context.Context, title, providerName string, _ float64) (chordload.CatalogRef, error) {
	m.record("lookup:" + title + "/" + providerName)
	return m.lookupRef, m.lookupErr
}

// callsWithPrefix returns the recorded calls matching one entity kind.
func (m *mockStore) callsWithPrefix(prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

type mockLedger struct {
	mu      sync.Mutex
	entries [][]any
	err     error
}

func (m *mockLedger) Append(values ...any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, values)
	return m.err
}

func (m *mockLedger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

type mockScanner struct {
	results map[string]chordload.ScanResult
	err     error
}

func (m *mockScanner) ScanTree(root string) (chordload.ScanResult, error) {
	if m.err != nil {
		return chordload.ScanResult{}, m.err
	}
	return m.results[root], nil
}

type mockLoader struct {
	mu    sync.Mutex
	paths []string
	stats chordload.UnitStats
	errs  map[string]error
}

func (m *mockLoader) LoadUnit(_ context.Context, path string) (chordload.UnitStats, error) {
	m.mu.Lock()
	m.paths = append(m.paths, path)
	m.mu.Unlock()
	if err := m.errs[path]; err != nil {
		return chordload.UnitStats{}, err
	}
	return m.stats, nil
}

// recordingProgress captures narration milestones for assertion.
type recordingProgress struct {
	trees []string
	steps []int
}

func (p *recordingProgress) TreeScanned(count int, root string) {
	p.trees = append(p.trees, root)
}

func (p *recordingProgress) UnitProcessed(done, total int) {
	p.steps = append(p.steps, done)
}
