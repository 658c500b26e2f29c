package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/jmoiron/sqlx"
)

type SQLBlobR struct {
	db       QueryI
	bindType int
}

// NewSQLBlobRepository expects bindType from sqlx.BindType for the driver in use.
func NewSQLBlobRepository(db QueryI, bindType int) *SQLBlobR {
	return &SQLBlobR{db: db, bindType: bindType}
}

func (s *SQLBlobR) Blob(ctx context.Context, key string) ([]byte, error) {
	query := sqlx.Rebind(s.bindType, `SELECT value FROM kv_store WHERE name = ?`)

	var value string
	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blob %q: %w", key, models.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return []byte(value), nil
}

func (s *SQLBlobR) SaveBlob(ctx context.Context, key string, data []byte) error {
	query := sqlx.Rebind(s.bindType, `INSERT INTO kv_store (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = CURRENT_TIMESTAMP
	`)

	_, err := s.db.ExecContext(ctx, query, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}

	return nil
}
