// Package testinfra provides shared infrastructure for integration tests:
// a disposable PostgreSQL container and the target schema fixture.
//
// Integration tests skip themselves when Docker is unavailable unless
// CHORDLOAD_TEST_CONN points at an existing database.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	PostgresImage    = "postgres:17-alpine"
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDB       = "chord"
)

type PostgresContainer struct {
	*postgres.PostgresContainer
	ConnString string
}

// StartPostgres launches a disposable PostgreSQL container and returns it
// with a ready-to-use connection string.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	ctr, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithUsername(PostgresUser),
		postgres.WithPassword(PostgresPassword),
		postgres.WithDatabase(PostgresDB),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &PostgresContainer{PostgresContainer: ctr, ConnString: connStr}, nil
}

// ConnString returns a connection string for integration tests. If
// CHORDLOAD_TEST_CONN is set it is returned directly; otherwise a container
// is started and terminated via t.Cleanup. Tests skip when neither is
// available.
func ConnString(t *testing.T) string {
	t.Helper()

	if conn := os.Getenv("CHORDLOAD_TEST_CONN"); conn != "" {
		return conn
	}

	ctx := context.Background()
	ctr, err := StartPostgres(ctx)
	if err != nil {
		t.Skipf("skipping integration test, no database available: %v", err)
	}

	t.Cleanup(func() {
		ctr.Terminate(context.Background()) //nolint:errcheck
	})

	return ctr.ConnString
}
