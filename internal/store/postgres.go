package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vireodata/chordload/pkg/chordload"
)

// uniqueViolationCode is the SQLSTATE class for uniqueness constraint
// rejections.
const uniqueViolationCode = "23505"

// PostgresStore implements chordload.Store on a pgx connection pool. Each
// statement runs in its own implicit transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool.
// Panics if pool is nil.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("store: pool cannot be nil")
	}
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) InsertProvider(ctx context.Context, p chordload.Provider) error {
	return s.exec(ctx, "provider", insertProviderSQL, p.FieldValues())
}

func (s *PostgresStore) InsertItem(ctx context.Context, it chordload.Item) error {
	return s.exec(ctx, "item", insertItemSQL, it.FieldValues())
}

func (s *PostgresStore) InsertTimeMark(ctx context.Context, tm chordload.TimeMark) error {
	return s.exec(ctx, "time mark", insertTimeMarkSQL, tm.FieldValues())
}

func (s *PostgresStore) InsertActor(ctx context.Context, a chordload.Actor) error {
	return s.exec(ctx, "actor", insertActorSQL, a.FieldValues())
}

func (s *PostgresStore) InsertFact(ctx context.Context, f chordload.ActivityFact) error {
	return s.exec(ctx, "activity fact", insertFactSQL, f.FieldValues())
}

// LookupCatalog resolves an item+provider pair for a play event. A miss
// returns the zero CatalogRef with a nil error; only real query failures
// are errors.
func (s *PostgresStore) LookupCatalog(ctx context.Context, title, providerName string, duration float64) (chordload.CatalogRef, error) {
	var ref chordload.CatalogRef

	row := s.pool.QueryRow(ctx, lookupCatalogSQL, title, providerName, duration)
	var itemID, providerID string
	if err := row.Scan(&itemID, &providerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chordload.CatalogRef{}, nil
		}
		return chordload.CatalogRef{}, fmt.Errorf("catalog lookup failed: %w", err)
	}

	ref.ItemID = &itemID
	ref.ProviderID = &providerID
	return ref, nil
}

// exec runs one insert. Uniqueness rejections are translated to
// chordload.ErrDuplicateKey so callers stay free of pgx types.
func (s *PostgresStore) exec(ctx context.Context, entity, sql string, args []any) error {
	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s insert rejected: %w", entity, chordload.ErrDuplicateKey)
		}
		return fmt.Errorf("%s insert failed: %w", entity, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
