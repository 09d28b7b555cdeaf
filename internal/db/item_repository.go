package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wsuwp/colorpalette/internal/models"
)

// ErrItemNotFound is returned when no item has the requested ID.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository handles content item persistence.
type ItemRepository struct {
	db *DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, type, status, title, created_at, updated_at`

// Create inserts a new item, generating its ID when unset.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?)
	`,
		item.ID,
		string(item.Type),
		string(item.Status),
		item.Title,
		now.Format(timeFormat),
		now.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// Get retrieves an item by ID.
func (r *ItemRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// List returns items, optionally filtered by type, oldest first.
func (r *ItemRepository) List(ctx context.Context, itemType *models.ItemType) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	args := []any{}
	if itemType != nil {
		query += ` WHERE type = ?`
		args = append(args, string(*itemType))
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

// UpdateStatus changes an item's status.
func (r *ItemRepository) UpdateStatus(ctx context.Context, id string, status models.ItemStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(timeFormat), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var itemType, status, createdAt, updatedAt string

	if err := row.Scan(&item.ID, &itemType, &status, &item.Title, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	item.Type = models.ItemType(itemType)
	item.Status = models.ItemStatus(status)
	if t, err := time.Parse(timeFormat, createdAt); err == nil {
		item.CreatedAt = t
	}
	if t, err := time.Parse(timeFormat, updatedAt); err == nil {
		item.UpdatedAt = t
	}
	return &item, nil
}
