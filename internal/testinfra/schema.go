package testinfra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaSQL creates the five target tables. Primary keys carry the
// uniqueness constraints that make plain inserts idempotent under retry.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS providers (
    provider_id VARCHAR PRIMARY KEY,
    name        VARCHAR NOT NULL,
    location    VARCHAR,
    latitude    DOUBLE PRECISION,
    longitude   DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS items (
    item_id      VARCHAR PRIMARY KEY,
    title        VARCHAR NOT NULL,
    provider_id  VARCHAR NOT NULL REFERENCES providers (provider_id),
    release_year INT,
    duration     DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS time_marks (
    start_time TIMESTAMP PRIMARY KEY,
    hour       INT NOT NULL,
    day        INT NOT NULL,
    week       INT NOT NULL,
    month      INT NOT NULL,
    year       INT NOT NULL,
    weekday    INT NOT NULL
);

CREATE TABLE IF NOT EXISTS actors (
    actor_id   VARCHAR PRIMARY KEY,
    first_name VARCHAR,
    last_name  VARCHAR,
    gender     VARCHAR,
    tier       VARCHAR NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_facts (
    fact_id     SERIAL PRIMARY KEY,
    start_time  TIMESTAMP NOT NULL,
    actor_id    VARCHAR NOT NULL,
    tier        VARCHAR,
    item_id     VARCHAR,
    provider_id VARCHAR,
    session_id  INT NOT NULL,
    location    VARCHAR,
    user_agent  VARCHAR
);
`

// CreateSchema applies the target schema to the connected database.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// DropSchema removes the target tables so a test can start clean.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const sql = `
DROP TABLE IF EXISTS activity_facts;
DROP TABLE IF EXISTS items;
DROP TABLE IF EXISTS providers;
DROP TABLE IF EXISTS time_marks;
DROP TABLE IF EXISTS actors;
`
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}
