package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists collections in a single key/value table with a
// JSONB payload column, created by the goose migrations. Saves are upserts
// so a collection key springs into existence on first write.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore on top of an open connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load retrieves the JSON payload stored under key.
func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT data FROM collections WHERE key = $1`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load collection %q: %w", key, err)
	}

	return data, true, nil
}

// Save upserts the JSON payload stored under key.
func (s *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO collections (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", key, err)
	}

	return nil
}
