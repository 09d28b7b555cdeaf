package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MetaRepository stores per-item key/value metadata. It satisfies
// palette.MetaStore.
type MetaRepository struct {
	db *DB
}

// NewMetaRepository creates a new MetaRepository.
func NewMetaRepository(db *DB) *MetaRepository {
	return &MetaRepository{db: db}
}

// GetMeta returns the stored value, or "" when none exists.
func (r *MetaRepository) GetMeta(ctx context.Context, itemID, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT meta_value FROM item_meta WHERE item_id = ? AND meta_key = ?`,
		itemID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read meta %s for item %s: %w", key, itemID, err)
	}
	return value, nil
}

// SetMeta writes value, replacing any previous value for the same key.
func (r *MetaRepository) SetMeta(ctx context.Context, itemID, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO item_meta (item_id, meta_key, meta_value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (item_id, meta_key) DO UPDATE SET
			meta_value = excluded.meta_value,
			updated_at = excluded.updated_at
	`, itemID, key, value, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to write meta %s for item %s: %w", key, itemID, err)
	}
	return nil
}

// ListMeta returns every metadata value stored for an item.
func (r *MetaRepository) ListMeta(ctx context.Context, itemID string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT meta_key, meta_value FROM item_meta WHERE item_id = ? ORDER BY meta_key`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan meta: %w", err)
		}
		meta[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meta: %w", err)
	}
	return meta, nil
}
