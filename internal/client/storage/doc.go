// Package storage is the client's persistent key-value store.
//
// Values are strings under string keys and survive process restarts. The
// SQLite implementation keeps them in a single table created by embedded
// goose migrations (see InitDatabase). Every driver error is reported
// wrapped with common.ErrStorageFailure.
//
// Key Types
//
//   - Store: Get/Set/Delete, the contract the session manager needs
//   - AtomicStore: Store plus a transactional read-modify-write
//   - SQLiteStore: SQLite implementation of both
package storage
