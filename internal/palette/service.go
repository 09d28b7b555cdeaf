package palette

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/wsuwp/colorpalette/internal/logging"
)

// DefaultMetaKey is the item metadata attribute holding the assigned key.
const DefaultMetaKey = "_color_palette"

// ErrItemIDRequired is returned when an assignment names no item.
var ErrItemIDRequired = errors.New("item id is required")

// MetaStore persists item metadata. GetMeta returns "" when nothing is stored.
type MetaStore interface {
	GetMeta(ctx context.Context, itemID, key string) (string, error)
	SetMeta(ctx context.Context, itemID, key, value string) error
}

// State describes an item's assignment relative to the current snapshot.
type State string

const (
	StateUnassigned    State = "unassigned"
	StateAssignedValid State = "assigned"
	StateAssignedStale State = "stale"
)

// Service assigns palettes to items and resolves them for rendering.
type Service struct {
	registry *Registry
	store    MetaStore
	metaKey  string
	logger   zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithMetaKey overrides the metadata attribute name.
func WithMetaKey(key string) ServiceOption {
	return func(s *Service) {
		if strings.TrimSpace(key) != "" {
			s.metaKey = key
		}
	}
}

// WithServiceLogger overrides the component logger.
func WithServiceLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service. A nil registry uses the built-in table only.
func NewService(registry *Registry, store MetaStore, opts ...ServiceOption) *Service {
	if registry == nil {
		registry = NewRegistry()
	}
	s := &Service{
		registry: registry,
		store:    store,
		metaKey:  DefaultMetaKey,
		logger:   logging.Component("palette"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Registry returns the registry backing the service.
func (s *Service) Registry() *Registry {
	return s.registry
}

// MetaKey returns the metadata attribute name.
func (s *Service) MetaKey() string {
	return s.metaKey
}

// Assign stores requested as itemID's palette. It returns false without
// writing when requested is not a key of the current snapshot.
func (s *Service) Assign(ctx context.Context, requested, itemID string) (bool, error) {
	if strings.TrimSpace(itemID) == "" {
		return false, ErrItemIDRequired
	}

	if !s.registry.Palettes().Has(requested) {
		s.logger.Debug().
			Str("item_id", itemID).
			Str("palette", requested).
			Msg("rejected unknown palette")
		return false, nil
	}

	if s.store == nil {
		return false, errors.New("metadata store is required")
	}

	key := SanitizeKey(requested)
	if err := s.store.SetMeta(ctx, itemID, s.metaKey, key); err != nil {
		return false, fmt.Errorf("store palette for item %s: %w", itemID, err)
	}

	s.logger.Debug().
		Str("item_id", itemID).
		Str("palette", key).
		Msg("palette assigned")
	return true, nil
}

// ResolveKey returns the palette key itemID renders with. Missing, stale
// or unreadable values resolve to DefaultKey.
func (s *Service) ResolveKey(ctx context.Context, itemID string) string {
	stored, err := s.stored(ctx, itemID)
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", itemID).Msg("palette lookup failed, using default")
		return DefaultKey
	}
	if stored == "" {
		return DefaultKey
	}
	if !s.registry.Palettes().Has(stored) {
		s.logger.Debug().
			Str("item_id", itemID).
			Str("palette", stored).
			Msg("stored palette no longer registered, using default")
		return DefaultKey
	}
	return stored
}

// ResolveClassNames returns the body classes for itemID. Items that are not
// eligible always get the default classes and metadata is not read.
func (s *Service) ResolveClassNames(ctx context.Context, itemID string, eligible bool) []string {
	if !eligible {
		return DefaultClassNames()
	}
	return ClassNames(s.ResolveKey(ctx, itemID))
}

// State reports how itemID's stored value relates to the current snapshot.
func (s *Service) State(ctx context.Context, itemID string) (State, error) {
	stored, err := s.stored(ctx, itemID)
	if err != nil {
		return StateUnassigned, err
	}
	switch {
	case stored == "":
		return StateUnassigned, nil
	case s.registry.Palettes().Has(stored):
		return StateAssignedValid, nil
	default:
		return StateAssignedStale, nil
	}
}

func (s *Service) stored(ctx context.Context, itemID string) (string, error) {
	if strings.TrimSpace(itemID) == "" || s.store == nil {
		return "", nil
	}
	return s.store.GetMeta(ctx, itemID, s.metaKey)
}
