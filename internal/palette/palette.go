// Package palette holds the palette registry and the rules for assigning a
// palette to a content item and resolving it to CSS class names.
package palette

import "strings"

// DefaultKey is the synthetic palette every snapshot contains.
const DefaultKey = "default"

const (
	classPrefix     = "palette-"
	textClassPrefix = "palette-text-"
)

// Palette is a named color selectable by an editor.
type Palette struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
}

var defaultPalette = Palette{Key: DefaultKey, Name: "Default", Hex: "#ffffff"}

// builtins is never mutated; Builtins hands out copies.
var builtins = [...]Palette{
	{Key: "crimson", Name: "Crimson", Hex: "#981e32"},
	{Key: "gray", Name: "Gray", Hex: "#5e6a71"},
	{Key: "green", Name: "Green", Hex: "#8f7e35"},
	{Key: "yellow", Name: "Yellow", Hex: "#c69214"},
	{Key: "blue", Name: "Blue", Hex: "#82a9af"},
	{Key: "orange", Name: "Orange", Hex: "#b67233"},
}

// Default returns the synthetic default palette.
func Default() Palette {
	return defaultPalette
}

// Builtins returns the built-in palette table in display order.
func Builtins() []Palette {
	out := make([]Palette, len(builtins))
	copy(out, builtins[:])
	return out
}

// SanitizeKey lowercases key and drops everything outside [a-z0-9_-].
func SanitizeKey(key string) string {
	key = strings.ToLower(key)
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ClassNames returns the ordered body classes for a resolved key.
func ClassNames(key string) []string {
	return []string{classPrefix + key, textClassPrefix + key}
}

// DefaultClassNames returns the class names of the default palette.
func DefaultClassNames() []string {
	return ClassNames(DefaultKey)
}
