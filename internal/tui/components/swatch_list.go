// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

// SwatchList stores state for a filterable list of palettes.
type SwatchList struct {
	Query    string
	Index    int
	Current  string
	Palettes []palette.Palette
}

// NewSwatchList creates a list positioned on current, or the first entry.
func NewSwatchList(palettes []palette.Palette, current string) *SwatchList {
	l := &SwatchList{Current: current}
	if len(palettes) > 0 {
		l.Palettes = make([]palette.Palette, len(palettes))
		copy(l.Palettes, palettes)
	}
	for idx, p := range l.Palettes {
		if p.Key == current {
			l.Index = idx
			break
		}
	}
	return l
}

// SetQuery replaces the filter and resets the selection.
func (l *SwatchList) SetQuery(query string) {
	l.Query = query
	l.Index = 0
	l.ClampIndex()
}

// Move shifts the selection, wrapping at both ends.
func (l *SwatchList) Move(delta int) {
	items := l.Visible()
	if len(items) == 0 {
		l.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := l.Index
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(items) - 1
	} else if idx >= len(items) {
		idx = 0
	}
	l.Index = idx
}

// ClampIndex ensures the selection index stays in bounds.
func (l *SwatchList) ClampIndex() {
	items := l.Visible()
	if len(items) == 0 {
		l.Index = 0
		return
	}
	if l.Index < 0 {
		l.Index = 0
	}
	if l.Index >= len(items) {
		l.Index = len(items) - 1
	}
}

// Selected returns the highlighted palette.
func (l *SwatchList) Selected() (palette.Palette, bool) {
	items := l.Visible()
	if l.Index < 0 || l.Index >= len(items) {
		return palette.Palette{}, false
	}
	return items[l.Index], true
}

// Visible returns the palettes matching the query.
func (l *SwatchList) Visible() []palette.Palette {
	query := strings.TrimSpace(strings.ToLower(l.Query))
	if query == "" {
		return l.Palettes
	}
	tokens := strings.Fields(query)
	filtered := make([]palette.Palette, 0, len(l.Palettes))
	for _, p := range l.Palettes {
		haystack := strings.ToLower(p.Key + " " + p.Name + " " + p.Hex)
		if matchesTokens(haystack, tokens) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Render renders the list lines.
func (l *SwatchList) Render(styleSet styles.Styles) []string {
	items := l.Visible()
	if len(items) == 0 {
		return []string{EmptyPalettesFiltered(l.Query).RenderCompact(styleSet)}
	}

	lines := make([]string, 0, len(items))
	for idx, p := range items {
		label := fmt.Sprintf("%-10s %-10s %s", p.Key, p.Name, p.Hex)
		if p.Key == l.Current {
			label += " (current)"
		}
		swatch := styles.Swatch(p.Hex)
		if idx == l.Index {
			lines = append(lines, styleSet.Focus.Render("> ")+swatch+" "+styleSet.Focus.Render(label))
			continue
		}
		lines = append(lines, "  "+swatch+" "+styleSet.Text.Render(label))
	}
	return lines
}

func matchesTokens(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}
