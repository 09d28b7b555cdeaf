package extensions

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/wsuwp/colorpalette/internal/logging"
	"github.com/wsuwp/colorpalette/internal/palette"
)

// DirProvider serves palettes loaded from directories. Files are read on
// construction and on Reload, never on the render path.
type DirProvider struct {
	dirs   []string
	logger zerolog.Logger

	mu       sync.RWMutex
	palettes []palette.Palette
}

// NewDirProvider loads dirs and returns a provider over their palettes.
func NewDirProvider(dirs []string) (*DirProvider, error) {
	p := &DirProvider{
		dirs:   append([]string(nil), dirs...),
		logger: logging.Component("extensions"),
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads every directory. On error the previous palettes are kept.
func (p *DirProvider) Reload() error {
	loaded, err := LoadFromPaths(p.dirs)
	if err != nil {
		p.logger.Warn().Err(err).Msg("palette reload failed, keeping previous set")
		return err
	}

	p.mu.Lock()
	p.palettes = loaded
	p.mu.Unlock()

	p.logger.Debug().Int("count", len(loaded)).Strs("dirs", p.dirs).Msg("palette files loaded")
	return nil
}

// Palettes implements palette.Provider.
func (p *DirProvider) Palettes() []palette.Palette {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]palette.Palette, len(p.palettes))
	copy(out, p.palettes)
	return out
}
