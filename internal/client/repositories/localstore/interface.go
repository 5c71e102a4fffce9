// Package localstore is the persisted key-value surface of the application:
// string-keyed JSON-serializable records under a fixed namespace prefix,
// surviving restarts. It backs the session record, the auth token marker
// and the favorites set.
package localstore

import "context"

type Repository interface {
	// Get returns the value under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// DeleteAll removes the given keys, atomically where the backend
	// supports transactions.
	DeleteAll(ctx context.Context, keys ...string) error
	// Clear removes every record in the namespace.
	Clear(ctx context.Context) error
}
