package chordload

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store exposes the fixed parameterized statements of the target schema.
// Each insert attempts exactly one row; a rejection by uniqueness
// constraint is reported as an error wrapping ErrDuplicateKey so callers
// can apply the ledger-and-continue policy uniformly.
//
// Thread-Safety: implementations backed by a connection pool are safe for
// concurrent use, but the pipeline itself serializes writes so the store's
// uniqueness constraints remain the sole dedup arbiter.
type Store interface {
	InsertProvider(ctx context.Context, p Provider) error
	InsertItem(ctx context.Context, it Item) error
	InsertTimeMark(ctx context.Context, tm TimeMark) error
	InsertActor(ctx context.Context, a Actor) error
	InsertFact(ctx context.Context, f ActivityFact) error

	// LookupCatalog resolves an item+provider pair by exact match on item
	// title, provider name, and duration. A miss is not an error: the
	// zero CatalogRef (both IDs nil) is returned with a nil error.
	LookupCatalog(ctx context.Context, title, providerName string, duration float64) (CatalogRef, error)
}

// CatalogRef is the result of a catalog lookup. Nil IDs mean no match;
// fact records carry them as null foreign keys.
type CatalogRef struct {
	ItemID     *string
	ProviderID *string
}

// Connector abstracts database connection establishment so different
// authentication methods (standard, AWS IAM, Google IAM, Azure Entra ID)
// can be plugged in.
type Connector interface {
	// Connect establishes a connection pool to the target database.
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}
