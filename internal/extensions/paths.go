package extensions

import (
	"os"
	"path/filepath"

	"github.com/wsuwp/colorpalette/internal/palette"
)

// SearchPaths returns palette directories in precedence order: configured
// directories first, then the user config dir, then the system share dir.
func SearchPaths(configured []string) []string {
	paths := make([]string, 0, len(configured)+2)
	for _, dir := range configured {
		if dir != "" {
			paths = append(paths, dir)
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "colorpalette", "palettes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "colorpalette", "palettes"))
	return paths
}

// LoadFromPaths loads palettes from dirs with first-hit precedence per key.
// Order follows dirs, then file name, then position in the file.
func LoadFromPaths(dirs []string) ([]palette.Palette, error) {
	seen := make(map[string]struct{})
	resolved := make([]palette.Palette, 0)

	for _, dir := range dirs {
		files, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			for _, p := range file.Palettes {
				if _, exists := seen[p.Key]; exists {
					continue
				}
				seen[p.Key] = struct{}{}
				resolved = append(resolved, p)
			}
		}
	}

	return resolved, nil
}
