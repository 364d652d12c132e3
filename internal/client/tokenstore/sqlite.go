package tokenstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iyasyr/iron-lms/internal/dbx"
)

// tokenKey is the single credentials row this store owns.
const tokenKey = "token"

// SQLiteStore persists the bearer token in a local SQLite database so the
// session survives a process restart.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", tokenKey, err)
	}
	return value, nil
}

// Set replaces the token slot atomically: the old value is removed and the
// new one inserted in one transaction, so a failure mid-write leaves the
// previous token intact.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO credentials (key, value) VALUES (?, ?)`, tokenKey, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", tokenKey, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credentials[%s]: %w", tokenKey, err)
	}
	return nil
}
