// Package events provides helper functions for recording palette events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wsuwp/colorpalette/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogPaletteAssigned records a successful palette assignment for an item.
func LogPaletteAssigned(ctx context.Context, repo Repository, itemID, key, previous string) error {
	return logItemEvent(ctx, repo, models.EventTypePaletteAssigned, itemID, models.PaletteAssignedPayload{
		Palette:  key,
		Previous: previous,
	})
}

// LogPaletteRejected records an assignment refused because the key is unknown.
func LogPaletteRejected(ctx context.Context, repo Repository, itemID, requested string) error {
	return logItemEvent(ctx, repo, models.EventTypePaletteRejected, itemID, models.PaletteRejectedPayload{
		Requested: requested,
		Reason:    "palette not registered",
	})
}

// LogItemCreated records a new content item.
func LogItemCreated(ctx context.Context, repo Repository, item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return logItemEvent(ctx, repo, models.EventTypeItemCreated, item.ID, item)
}

func logItemEvent(ctx context.Context, repo Repository, eventType models.EventType, itemID string, payload any) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if itemID == "" {
		return fmt.Errorf("item id is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeItem,
		EntityID:   itemID,
		Payload:    data,
	})
}
