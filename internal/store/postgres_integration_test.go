package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireodata/chordload/internal/testinfra"
	"github.com/vireodata/chordload/pkg/chordload"
)

func setupStore(t *testing.T) (*PostgresStore, *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, testinfra.ConnString(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, testinfra.DropSchema(ctx, pool))
	require.NoError(t, testinfra.CreateSchema(ctx, pool))

	return NewPostgresStore(pool), pool
}

func TestPostgresStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	s, pool := setupStore(t)
	ctx := context.Background()

	lat, lon := 35.14968, -90.04892
	provider := chordload.Provider{
		ID:        "AR5KOSW1187FB35FF4",
		Name:      "Elena",
		Location:  "Dubai UAE",
		Latitude:  &lat,
		Longitude: &lon,
	}

	year := 1982
	item := chordload.Item{
		ID:          "SOZCTXZ12AB0182364",
		Title:       "Setanta matins",
		ProviderID:  provider.ID,
		ReleaseYear: &year,
		Duration:    269.58363,
	}

	t.Run("insert provider then item", func(t *testing.T) {
		require.NoError(t, s.InsertProvider(ctx, provider))
		require.NoError(t, s.InsertItem(ctx, item))
	})

	t.Run("duplicate insert reports sentinel", func(t *testing.T) {
		err := s.InsertProvider(ctx, provider)
		assert.ErrorIs(t, err, chordload.ErrDuplicateKey)

		err = s.InsertItem(ctx, item)
		assert.ErrorIs(t, err, chordload.ErrDuplicateKey)

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM providers").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("item without provider fails without sentinel", func(t *testing.T) {
		orphan := chordload.Item{ID: "SO_NOPE", Title: "x", ProviderID: "AR_MISSING", Duration: 1}
		err := s.InsertItem(ctx, orphan)
		require.Error(t, err)
		assert.NotErrorIs(t, err, chordload.ErrDuplicateKey)
	})

	t.Run("lookup hit", func(t *testing.T) {
		ref, err := s.LookupCatalog(ctx, item.Title, provider.Name, item.Duration)
		require.NoError(t, err)
		require.NotNil(t, ref.ItemID)
		require.NotNil(t, ref.ProviderID)
		assert.Equal(t, item.ID, *ref.ItemID)
		assert.Equal(t, provider.ID, *ref.ProviderID)
	})

	t.Run("lookup miss is not an error", func(t *testing.T) {
		ref, err := s.LookupCatalog(ctx, "Unknown Song", "Unknown Artist", 1.0)
		require.NoError(t, err)
		assert.Nil(t, ref.ItemID)
		assert.Nil(t, ref.ProviderID)
	})

	t.Run("time mark and actor", func(t *testing.T) {
		tm := chordload.DeriveTimeMark(1541903636796)
		require.NoError(t, s.InsertTimeMark(ctx, tm))
		assert.ErrorIs(t, s.InsertTimeMark(ctx, tm), chordload.ErrDuplicateKey)

		actor := chordload.Actor{ID: "91", FirstName: "Jayden", LastName: "Bell", Gender: "M", Tier: "free"}
		require.NoError(t, s.InsertActor(ctx, actor))
		assert.ErrorIs(t, s.InsertActor(ctx, actor), chordload.ErrDuplicateKey)
	})

	t.Run("fact with null references", func(t *testing.T) {
		fact := chordload.ActivityFact{
			Timestamp: time.UnixMilli(1541903636796).UTC(),
			ActorID:   "91",
			Tier:      "free",
			SessionID: 829,
			Location:  "Dallas-Fort Worth-Arlington, TX",
			UserAgent: "Mozilla/5.0",
		}
		require.NoError(t, s.InsertFact(ctx, fact))

		// Facts carry no uniqueness constraint, so a replay inserts again.
		require.NoError(t, s.InsertFact(ctx, fact))

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM activity_facts WHERE item_id IS NULL").Scan(&count))
		assert.Equal(t, 2, count)
	})
}
