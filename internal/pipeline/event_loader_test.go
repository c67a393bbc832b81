package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireodata/chordload/internal/logging"
	"github.com/vireodata/chordload/pkg/chordload"
)

func eventLine(page string, ts int64, actorID, song, artist string, session int) string {
	return fmt.Sprintf(`{"page": "%s", "ts": %d, "userId": "%s", "firstName": "Jayden", "lastName": "Bell", "gender": "M", "level": "free", "song": "%s", "artist": "%s", "length": 269.58363, "sessionId": %d, "location": "Dallas, TX", "userAgent": "Mozilla/5.0"}`,
		page, ts, actorID, song, artist, session)
}

func TestEventLoader_FiltersNonPlayEvents(t *testing.T) {
	unit := strings.Join([]string{
		eventLine("Home", 1541903636796, "91", "x", "y", 829),
		eventLine("NextSong", 1541903636796, "91", "Setanta matins", "Elena", 829),
		eventLine("Logout", 1541903700000, "91", "x", "y", 829),
	}, "\n")

	store := newMockStore()
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	stats, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	// one play: one time mark, one actor, one fact
	assert.Equal(t, 3, stats.Inserted)
	assert.Len(t, store.callsWithPrefix("fact:"), 1)
}

func TestEventLoader_TwoPlaysSameInstantAndActor(t *testing.T) {
	unit := strings.Join([]string{
		eventLine("NextSong", 1541903636796, "91", "Setanta matins", "Elena", 829),
		eventLine("NextSong", 1541903636796, "91", "Intro", "The Ramones", 829),
	}, "\n")

	store := newMockStore()
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	stats, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	assert.Len(t, store.callsWithPrefix("timemark:"), 1, "identical instants collapse before insert")
	assert.Len(t, store.callsWithPrefix("actor:"), 1, "identical actors collapse before insert")
	assert.Len(t, store.callsWithPrefix("fact:"), 2, "every play yields a fact")
	assert.Equal(t, 4, stats.Inserted)
}

func TestEventLoader_DuplicateTimeMarkLedgeredAndRunContinues(t *testing.T) {
	unit := eventLine("NextSong", 1541903636796, "91", "Setanta matins", "Elena", 829)

	store := newMockStore()
	store.timeMarkErrs[1541903636796] = fmt.Errorf("time mark insert rejected: %w", chordload.ErrDuplicateKey)
	ledger := &mockLedger{}
	loader := NewEventLoader(store, ledger, logging.NewNullLogger())

	stats, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 2, stats.Inserted)
	require.Equal(t, 1, ledger.count())

	// ledger entry carries the time mark's field values
	assert.Len(t, ledger.entries[0], 7)
}

func TestEventLoader_EmptyActorIDFilteredFromActors(t *testing.T) {
	unit := eventLine("NextSong", 1541903636796, "", "Setanta matins", "Elena", 829)

	store := newMockStore()
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	_, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	assert.Empty(t, store.callsWithPrefix("actor:"))
	assert.Len(t, store.callsWithPrefix("fact:"), 1, "fact still loads with empty actor id")
}

func TestEventLoader_LookupHitPropagatesReferences(t *testing.T) {
	unit := eventLine("NextSong", 1541903636796, "91", "Setanta matins", "Elena", 829)

	itemID, providerID := "SOZCTXZ12AB0182364", "AR5KOSW1187FB35FF4"
	store := newMockStore()
	store.lookupRef = chordload.CatalogRef{ItemID: &itemID, ProviderID: &providerID}
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	_, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	require.Len(t, store.facts, 1)
	require.NotNil(t, store.facts[0].ItemID)
	assert.Equal(t, itemID, *store.facts[0].ItemID)
	require.NotNil(t, store.facts[0].ProviderID)
	assert.Equal(t, providerID, *store.facts[0].ProviderID)
}

func TestEventLoader_LookupMissYieldsNullReferences(t *testing.T) {
	unit := eventLine("NextSong", 1541903636796, "91", "Unknown", "Nobody", 829)

	store := newMockStore()
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	_, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	require.Len(t, store.facts, 1)
	assert.Nil(t, store.facts[0].ItemID)
	assert.Nil(t, store.facts[0].ProviderID)
}

func TestEventLoader_LookupFailureSkipsFactRow(t *testing.T) {
	unit := eventLine("NextSong", 1541903636796, "91", "Setanta matins", "Elena", 829)

	store := newMockStore()
	store.lookupErr = fmt.Errorf("catalog lookup failed: connection reset")
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	stats, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Failed)
	assert.Empty(t, store.callsWithPrefix("fact:"))
}

func TestEventLoader_NoPlayEventsIsSuccessfulNoOp(t *testing.T) {
	unit := eventLine("Home", 1541903636796, "91", "x", "y", 829)

	store := newMockStore()
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	stats, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Rows())
	assert.Empty(t, store.calls)
}

func TestEventLoader_FactTimestampMatchesTimeMark(t *testing.T) {
	unit := eventLine("NextSong", 1541903636796, "91", "Setanta matins", "Elena", 829)

	store := newMockStore()
	loader := NewEventLoader(store, &mockLedger{}, logging.NewNullLogger())

	_, err := loader.LoadUnit(context.Background(), writeUnit(t, unit))
	require.NoError(t, err)

	require.Len(t, store.facts, 1)
	assert.Equal(t, chordload.EpochTime(1541903636796), store.facts[0].Timestamp)
}
