// Package extensions loads additional palettes from YAML files.
package extensions

import (
	"errors"
	"fmt"

	"github.com/wsuwp/colorpalette/internal/palette"
)

var (
	// ErrPaletteKeyRequired is returned when an entry has no key.
	ErrPaletteKeyRequired = errors.New("palette key is required")
	// ErrPaletteNameRequired is returned when an entry has no name.
	ErrPaletteNameRequired = errors.New("palette name is required")
	// ErrNoPalettes is returned when a file defines no palettes.
	ErrNoPalettes = errors.New("palette file must define at least one palette")
)

// PaletteValidationError describes an invalid entry in a palette file.
type PaletteValidationError struct {
	Index   int
	Key     string
	Message string
}

func (e *PaletteValidationError) Error() string {
	return fmt.Sprintf("palettes[%d] %q: %s", e.Index, e.Key, e.Message)
}

// File is a palette file on disk.
//
//	name: campus
//	palettes:
//	  - key: testing
//	    name: Testing
//	    hex: "#000000"
type File struct {
	Name     string            `yaml:"name"`
	Palettes []palette.Palette `yaml:"palettes"`
	Source   string            `yaml:"-"` // file path
}

// Validate checks that every entry has a sanitized key and a name.
func (f *File) Validate() error {
	if len(f.Palettes) == 0 {
		return ErrNoPalettes
	}
	for i, p := range f.Palettes {
		if p.Key == "" {
			return &PaletteValidationError{Index: i, Message: ErrPaletteKeyRequired.Error()}
		}
		if palette.SanitizeKey(p.Key) != p.Key {
			return &PaletteValidationError{Index: i, Key: p.Key, Message: "key must be lowercase letters, digits, '-' or '_'"}
		}
		if p.Key == palette.DefaultKey {
			return &PaletteValidationError{Index: i, Key: p.Key, Message: "the default palette cannot be redefined"}
		}
		if p.Name == "" {
			return &PaletteValidationError{Index: i, Key: p.Key, Message: ErrPaletteNameRequired.Error()}
		}
	}
	return nil
}
