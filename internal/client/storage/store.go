package storage

import "context"

// Store is durable string-keyed storage.
type Store interface {
	// Get returns the value stored under key. found is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error
}

// UpdateFunc computes the new value of a key from its current one.
type UpdateFunc func(current string, found bool) (string, error)

// AtomicStore is a Store that can also read and rewrite one key without
// another writer slipping in between.
type AtomicStore interface {
	Store
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
