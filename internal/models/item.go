package models

import (
	"strings"
	"time"
)

// ItemType is the content type of an item.
type ItemType string

const (
	ItemTypePage ItemType = "page"
	ItemTypePost ItemType = "post"
)

// ItemStatus is the publication status of an item.
type ItemStatus string

const (
	ItemStatusPublish   ItemStatus = "publish"
	ItemStatusDraft     ItemStatus = "draft"
	ItemStatusAutoDraft ItemStatus = "auto-draft"
)

// Item is a content item that may carry a palette assignment.
type Item struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`

	// Type is the content type (page, post, ...).
	Type ItemType `json:"type"`

	// Status is the publication status.
	Status ItemStatus `json:"status"`

	// Title is the human-readable title.
	Title string `json:"title"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the item is valid.
func (i *Item) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(i.Type)) == "" {
		validation.AddMessage("type", "item type is required")
	}
	if strings.TrimSpace(string(i.Status)) == "" {
		validation.AddMessage("status", "item status is required")
	}
	return validation.Err()
}
