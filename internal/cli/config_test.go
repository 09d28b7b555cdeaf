package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withConfigDir(t *testing.T, dir string, force bool) {
	t.Helper()

	originalFunc := configDirFunc
	configDirFunc = func() string {
		return dir
	}
	originalForce := initForce
	initForce = force

	t.Cleanup(func() {
		configDirFunc = originalFunc
		initForce = originalForce
	})
}

func TestCreateConfigFile(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "colorpalette")
	withConfigDir(t, tempDir, false)

	result := createConfigFile()

	if result.Status != "done" {
		t.Errorf("expected status 'done', got %q: %s", result.Status, result.Message)
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	if !strings.HasPrefix(string(content), "# Color Palette Configuration File") {
		t.Error("config file doesn't contain expected header")
	}
	for _, section := range []string{"logging:", "palette:", "daemon:", "tui:"} {
		if !strings.Contains(string(content), section) {
			t.Errorf("config file missing section: %s", section)
		}
	}
}

func TestCreateConfigFile_ExistingNoForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir, false)

	result := createConfigFile()

	if result.Status != "skipped" {
		t.Errorf("expected status 'skipped', got %q: %s", result.Status, result.Message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "existing" {
		t.Error("existing config was modified")
	}
}

func TestCreateConfigFile_ExistingForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir, true)

	result := createConfigFile()

	if result.Status != "done" {
		t.Errorf("expected status 'done', got %q: %s", result.Status, result.Message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) == "existing" {
		t.Error("existing config was not overwritten")
	}
}

func TestCreateConfigFile_UnwritableDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}
	withConfigDir(t, filepath.Join(blocker, "colorpalette"), false)

	result := createConfigFile()

	if result.Status != "failed" {
		t.Errorf("expected status 'failed', got %q: %s", result.Status, result.Message)
	}
}

func TestInitResult_Structure(t *testing.T) {
	results := []initResult{
		{Name: "Config file", Status: "done", Message: "OK"},
		{Name: "Config file", Status: "skipped", Message: "Already exists"},
		{Name: "Config file", Status: "failed", Message: "Something went wrong"},
	}

	validStatuses := map[string]bool{"done": true, "skipped": true, "failed": true}
	for i, r := range results {
		if r.Name == "" {
			t.Errorf("result %d has empty name", i)
		}
		if !validStatuses[r.Status] {
			t.Errorf("result %d has invalid status: %s", i, r.Status)
		}
	}
}
