// Package store implements the PostgreSQL persistence layer for the
// chordload star schema: four dimension tables and one fact table, each
// written through a fixed parameterized insert. Inserts are plain INSERTs;
// the tables' uniqueness constraints are the sole dedup arbiter, and a
// rejected insert surfaces as chordload.ErrDuplicateKey.
package store

// Insert statements, one per table, in FieldValues order.
const (
	insertProviderSQL = `
INSERT INTO providers (provider_id, name, location, latitude, longitude)
VALUES ($1, $2, $3, $4, $5)`

	insertItemSQL = `
INSERT INTO items (item_id, title, provider_id, release_year, duration)
VALUES ($1, $2, $3, $4, $5)`

	insertTimeMarkSQL = `
INSERT INTO time_marks (start_time, hour, day, week, month, year, weekday)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	insertActorSQL = `
INSERT INTO actors (actor_id, first_name, last_name, gender, tier)
VALUES ($1, $2, $3, $4, $5)`

	insertFactSQL = `
INSERT INTO activity_facts (start_time, actor_id, tier, item_id, provider_id, session_id, location, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
)

// lookupCatalogSQL resolves an (item, provider) pair by exact match on
// item title, provider name, and item duration.
const lookupCatalogSQL = `
SELECT i.item_id, i.provider_id
FROM items i
JOIN providers p ON i.provider_id = p.provider_id
WHERE i.title = $1
  AND p.name = $2
  AND i.duration = $3`
