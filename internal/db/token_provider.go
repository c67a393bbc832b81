package db

import (
	"context"
	"time"
)

// TokenProvider abstracts cloud token acquisition for database
// authentication. The token is used as the password when connecting to a
// cloud-hosted PostgreSQL instance.
type TokenProvider interface {
	// GetToken acquires an authentication token and returns it with its
	// expiry time.
	GetToken(ctx context.Context) (token string, expiresOn time.Time, err error)

	// String returns a human-readable description for logging. Must not
	// include secrets.
	String() string
}

// AzurePostgreSQLScope is the OAuth scope for Azure Database for
// PostgreSQL.
const AzurePostgreSQLScope = "https://ossrdbms-aad.database.windows.net/.default"
