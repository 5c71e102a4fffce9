package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/editaisbr/editais/internal/common"
	"github.com/editaisbr/editais/internal/dbx"
)

// SQLiteRepository stores namespaced key-value records in the storage table.
// Keys passed in are logical names ("user", "token", "favoritos"); the
// namespace prefix is applied here.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func namespaced(key string) string {
	return common.StorageNamespace + key
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM storage WHERE key = ?`, namespaced(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get storage[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, namespaced(key), value)
	if err != nil {
		return fmt.Errorf("failed to set storage[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, namespaced(key))
	if err != nil {
		return fmt.Errorf("failed to delete storage[%s]: %w", key, err)
	}
	return nil
}

// DeleteAll removes the given logical keys in a single transaction when the
// repository wraps a *sql.DB; inside an existing transaction it deletes them
// sequentially.
func (r *SQLiteRepository) DeleteAll(ctx context.Context, keys ...string) error {
	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return deleteKeys(ctx, tx, keys)
		})
	}
	return deleteKeys(ctx, r.db, keys)
}

func deleteKeys(ctx context.Context, db dbx.DBTX, keys []string) error {
	for _, key := range keys {
		if _, err := db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, namespaced(key)); err != nil {
			return fmt.Errorf("failed to delete storage[%s]: %w", key, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM storage WHERE key LIKE ? || '%'`,
		common.StorageNamespace)
	if err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}
