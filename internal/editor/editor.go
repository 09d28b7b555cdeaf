// Package editor implements the admin side of palette assignment: the
// selector view shown next to an item and the save path behind it.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wsuwp/colorpalette/internal/events"
	"github.com/wsuwp/colorpalette/internal/logging"
	"github.com/wsuwp/colorpalette/internal/models"
	"github.com/wsuwp/colorpalette/internal/palette"
)

// FieldName is the form field carrying the selected palette key.
const FieldName = "palette"

var (
	// ErrServiceRequired is returned when the handler has no palette service.
	ErrServiceRequired = errors.New("palette service is required")
	// ErrItemStoreRequired is returned when the handler cannot look up items.
	ErrItemStoreRequired = errors.New("item store is required")
)

// ItemStore looks up content items.
type ItemStore interface {
	Get(ctx context.Context, id string) (*models.Item, error)
}

// Outcome is the result of a save request.
type Outcome string

const (
	OutcomeSaved    Outcome = "saved"
	OutcomeRejected Outcome = "rejected"
	OutcomeSkipped  Outcome = "skipped"
)

// SkipReason explains why a save request did not attempt an assignment.
type SkipReason string

const (
	SkipAutosave     SkipReason = "autosave"
	SkipWrongType    SkipReason = "wrong_type"
	SkipAutoDraft    SkipReason = "auto_draft"
	SkipMissingField SkipReason = "missing_field"
)

// SaveRequest is a submitted edit form.
type SaveRequest struct {
	ItemID   string
	Autosave bool
	Fields   map[string]string
}

// SaveResult reports what Save did.
type SaveResult struct {
	Outcome  Outcome    `json:"outcome"`
	Reason   SkipReason `json:"reason,omitempty"`
	ItemID   string     `json:"item_id"`
	Palette  string     `json:"palette,omitempty"`
	Previous string     `json:"previous,omitempty"`
}

// Option is one selectable palette in the meta box.
type Option struct {
	palette.Palette
	Current bool `json:"current"`
}

// MetaBox is the selector view for one item.
type MetaBox struct {
	ItemID    string   `json:"item_id"`
	FieldName string   `json:"field_name"`
	Current   string   `json:"current"`
	Options   []Option `json:"options"`
}

// Handler serves the meta box and processes saves.
type Handler struct {
	service      *palette.Service
	items        ItemStore
	events       events.Repository
	eligibleType models.ItemType
	logger       zerolog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithEligibleType sets the item type that may carry a palette.
func WithEligibleType(itemType models.ItemType) HandlerOption {
	return func(h *Handler) {
		if itemType != "" {
			h.eligibleType = itemType
		}
	}
}

// WithEventRepository enables audit events for saves.
func WithEventRepository(repo events.Repository) HandlerOption {
	return func(h *Handler) {
		h.events = repo
	}
}

// WithLogger overrides the handler logger.
func WithLogger(logger zerolog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a Handler.
func NewHandler(service *palette.Service, items ItemStore, opts ...HandlerOption) *Handler {
	h := &Handler{
		service:      service,
		items:        items,
		eligibleType: models.ItemTypePage,
		logger:       logging.Component("editor"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EligibleType returns the item type that may carry a palette.
func (h *Handler) EligibleType() models.ItemType {
	return h.eligibleType
}

// MetaBox builds the selector view for an item. The current option is the
// resolved key, so a stale assignment shows as default.
func (h *Handler) MetaBox(ctx context.Context, itemID string) (*MetaBox, error) {
	if h.service == nil {
		return nil, ErrServiceRequired
	}

	current := palette.DefaultKey
	if itemID != "" {
		current = h.service.ResolveKey(ctx, itemID)
	}

	snapshot := h.service.Registry().Palettes()
	box := &MetaBox{
		ItemID:    itemID,
		FieldName: FieldName,
		Current:   current,
		Options:   make([]Option, 0, snapshot.Len()),
	}
	for _, p := range snapshot.List() {
		box.Options = append(box.Options, Option{Palette: p, Current: p.Key == current})
	}
	return box, nil
}

// Save applies a submitted form. Autosaves, items of another type,
// auto-drafts and forms without the palette field are skipped.
func (h *Handler) Save(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	if h.service == nil {
		return nil, ErrServiceRequired
	}
	if h.items == nil {
		return nil, ErrItemStoreRequired
	}
	if req.ItemID == "" {
		return nil, palette.ErrItemIDRequired
	}

	result := &SaveResult{ItemID: req.ItemID}
	if req.Autosave {
		return skip(result, SkipAutosave), nil
	}

	item, err := h.items.Get(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item %s: %w", req.ItemID, err)
	}
	if item.Type != h.eligibleType {
		return skip(result, SkipWrongType), nil
	}
	if item.Status == models.ItemStatusAutoDraft {
		return skip(result, SkipAutoDraft), nil
	}

	requested, ok := req.Fields[FieldName]
	if !ok {
		return skip(result, SkipMissingField), nil
	}

	previous := h.service.ResolveKey(ctx, item.ID)
	assigned, err := h.service.Assign(ctx, requested, item.ID)
	if err != nil {
		return nil, err
	}

	if !assigned {
		result.Outcome = OutcomeRejected
		result.Palette = requested
		h.logger.Info().Str("item_id", item.ID).Str("requested", requested).Msg("palette rejected")
		h.audit(func() error { return events.LogPaletteRejected(ctx, h.events, item.ID, requested) })
		return result, nil
	}

	result.Outcome = OutcomeSaved
	result.Palette = palette.SanitizeKey(requested)
	result.Previous = previous
	h.logger.Info().Str("item_id", item.ID).Str("palette", result.Palette).Str("previous", previous).Msg("palette assigned")
	h.audit(func() error { return events.LogPaletteAssigned(ctx, h.events, item.ID, result.Palette, previous) })
	return result, nil
}

func (h *Handler) audit(write func() error) {
	if h.events == nil {
		return
	}
	if err := write(); err != nil {
		h.logger.Warn().Err(err).Msg("failed to record palette event")
	}
}

func skip(result *SaveResult, reason SkipReason) *SaveResult {
	result.Outcome = OutcomeSkipped
	result.Reason = reason
	return result
}
