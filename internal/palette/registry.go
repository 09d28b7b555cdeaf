package palette

import (
	"github.com/rs/zerolog"
	"github.com/wsuwp/colorpalette/internal/logging"
)

// Snapshot is the ordered, keyed set of palettes valid at one moment.
// The default palette is always first.
type Snapshot struct {
	order []string
	byKey map[string]Palette
}

// Get returns the palette for key.
func (s Snapshot) Get(key string) (Palette, bool) {
	p, ok := s.byKey[key]
	return p, ok
}

// Has reports whether key is a member of the snapshot. Matching is exact.
func (s Snapshot) Has(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// Len returns the number of palettes.
func (s Snapshot) Len() int {
	return len(s.order)
}

// Keys returns the palette keys in display order.
func (s Snapshot) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// List returns the palettes in display order.
func (s Snapshot) List() []Palette {
	out := make([]Palette, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

func (s *Snapshot) put(p Palette) {
	if _, exists := s.byKey[p.Key]; !exists {
		s.order = append(s.order, p.Key)
	}
	s.byKey[p.Key] = p
}

// Registry builds snapshots from the built-in table and an optional provider.
type Registry struct {
	provider Provider
	logger   zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithProvider sets the extension provider.
func WithProvider(provider Provider) RegistryOption {
	return func(r *Registry) {
		r.provider = provider
	}
}

// WithRegistryLogger overrides the component logger.
func WithRegistryLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{logger: logging.Component("registry")}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Palettes returns a fresh snapshot: default, then built-ins, then provider
// entries merged by key. Provider entries cannot replace the default palette
// and must already be sanitized keys.
func (r *Registry) Palettes() Snapshot {
	snap := Snapshot{
		order: make([]string, 0, len(builtins)+1),
		byKey: make(map[string]Palette, len(builtins)+1),
	}
	snap.put(defaultPalette)
	for _, p := range Builtins() {
		snap.put(p)
	}

	if r.provider == nil {
		return snap
	}

	for _, p := range r.provider.Palettes() {
		switch {
		case p.Key == DefaultKey:
			r.logger.Debug().Msg("ignoring extension palette overriding default")
			continue
		case p.Key == "" || SanitizeKey(p.Key) != p.Key:
			r.logger.Warn().Str("key", p.Key).Msg("ignoring extension palette with invalid key")
			continue
		}
		snap.put(p)
	}

	return snap
}
