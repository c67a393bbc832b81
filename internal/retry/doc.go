// Package retry provides transient-error classification and exponential
// backoff for database connection establishment.
//
// Retrying is limited to connecting: row inserts are never retried, since
// the recovery path for a failed row is re-running the batch against
// idempotent inserts.
package retry
