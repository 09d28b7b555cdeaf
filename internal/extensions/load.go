package extensions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a single palette file from disk.
func LoadFile(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file %s: %w", path, err)
	}

	file, err := parseFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse palette file %s: %w", path, err)
	}
	file.Source = path
	return file, nil
}

// LoadDir loads all palette files from a directory, sorted by file name.
// A missing directory yields no files.
func LoadDir(dir string) ([]*File, error) {
	if strings.TrimSpace(dir) == "" {
		return []*File{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*File{}, nil
		}
		return nil, fmt.Errorf("read palette dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	files := make([]*File, 0, len(names))
	for _, name := range names {
		file, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func parseFile(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	file.Name = strings.TrimSpace(file.Name)
	for i := range file.Palettes {
		file.Palettes[i].Key = strings.TrimSpace(file.Palettes[i].Key)
		file.Palettes[i].Name = strings.TrimSpace(file.Palettes[i].Name)
		file.Palettes[i].Hex = strings.TrimSpace(file.Palettes[i].Hex)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}

	return &file, nil
}
