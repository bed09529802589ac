package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLBackend keeps values in the site_contents table, one row per key.
type SQLBackend struct {
	db *sqlx.DB
}

func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.GetContext(ctx, &value, b.db.Rebind(`
		SELECT content_json
		FROM site_contents
		WHERE content_key = ?
	`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select content %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set overwrites the row for key, inserting it when absent. version is
// bumped on every write so an unchanged value still counts as an update.
func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	result, err := b.db.ExecContext(ctx, b.db.Rebind(`
		UPDATE site_contents
		SET content_json = ?,
		    version = version + 1,
		    updated_at = CURRENT_TIMESTAMP
		WHERE content_key = ?
	`), string(value), key)
	if err != nil {
		return fmt.Errorf("update content %q: %w", key, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update content %q: %w", key, err)
	}
	if rows > 0 {
		return nil
	}

	_, err = b.db.ExecContext(ctx, b.db.Rebind(`
		INSERT INTO site_contents (content_key, content_json, version)
		VALUES (?, ?, 1)
	`), key, string(value))
	if err != nil {
		return fmt.Errorf("insert content %q: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *SQLBackend) Name() string { return "sql:" + b.db.DriverName() }
