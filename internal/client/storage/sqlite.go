package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/dmitrijs2005/gofinances/internal/dbx"
)

// SQLiteStore implements AtomicStore on top of the kv table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, s.db, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	return set(ctx, s.db, key, value)
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete value[%s]: %w: %w", key, common.ErrStorageFailure, err)
	}
	return nil
}

// Update reads key, passes it to fn and writes the result back in one
// transaction. An error from fn aborts the update and is returned as is.
func (s *SQLiteStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	var fnErr error

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, found, err := get(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := fn(current, found)
		if err != nil {
			fnErr = err
			return err
		}
		return set(ctx, tx, key, next)
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	case errors.Is(err, common.ErrStorageFailure):
		return err
	default:
		return fmt.Errorf("failed to update value[%s]: %w: %w", key, common.ErrStorageFailure, err)
	}
}

func get(ctx context.Context, q dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get value[%s]: %w: %w", key, common.ErrStorageFailure, err)
	}
	return value, true, nil
}

func set(ctx context.Context, q dbx.DBTX, key string, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set value[%s]: %w: %w", key, common.ErrStorageFailure, err)
	}
	return nil
}
