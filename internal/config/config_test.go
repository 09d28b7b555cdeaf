package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, DefaultMetaKey, cfg.Palette.MetaKey)
	require.Equal(t, "page", cfg.Palette.EligibleType)
	require.Equal(t, DefaultEligibilityRule, cfg.Palette.EligibilityRule)
	require.Equal(t, DefaultDaemonPort, cfg.Daemon.Port)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFileWithInlineExtensions(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/palette-test.db
palette:
  meta_key: _page_palette
  extensions:
    - key: testing
      name: Testing
      hex: "#000000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/tmp/palette-test.db", cfg.Database.Path)
	require.Equal(t, "_page_palette", cfg.Palette.MetaKey)
	require.Equal(t, "page", cfg.Palette.EligibleType)
	require.Len(t, cfg.Palette.Extensions, 1)
	require.Equal(t, ExtensionPalette{Key: "testing", Name: "Testing", Hex: "#000000"}, cfg.Palette.Extensions[0])
}

func TestLoadRejectsUnsanitizedExtensionKey(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/palette-test.db
palette:
  extensions:
    - key: Brand Blue
      name: Brand Blue
      hex: "#0000ff"
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "palette.extensions[0]")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PALETTE_PALETTE_META_KEY", "_env_palette")
	t.Setenv("PALETTE_DAEMON_PORT", "6000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "_env_palette", cfg.Palette.MetaKey)
	require.Equal(t, 6000, cfg.Daemon.Port)
}

func TestTemplateLoads(t *testing.T) {
	cfg, err := Load(writeConfig(t, Template))
	require.NoError(t, err)
	require.Equal(t, DefaultMetaKey, cfg.Palette.MetaKey)
	require.Empty(t, cfg.Palette.Extensions)
	require.True(t, cfg.Daemon.RateLimit.Enabled)
	require.Equal(t, "default", cfg.TUI.Theme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty meta key", mutate: func(c *Config) { c.Palette.MetaKey = " " }, wantErr: true},
		{name: "empty database path", mutate: func(c *Config) { c.Database.Path = "" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Daemon.Port = 70000 }, wantErr: true},
		{name: "negative burst", mutate: func(c *Config) { c.Daemon.RateLimit.Burst = -1 }, wantErr: true},
		{name: "extension without key", mutate: func(c *Config) {
			c.Palette.Extensions = []ExtensionPalette{{Name: "Nameless"}}
		}, wantErr: true},
		{name: "extension with unsanitized key", mutate: func(c *Config) {
			c.Palette.Extensions = []ExtensionPalette{{Key: "Brand Blue", Name: "Brand Blue"}}
		}, wantErr: true},
		{name: "extension redefining default", mutate: func(c *Config) {
			c.Palette.Extensions = []ExtensionPalette{{Key: "default", Name: "Plain"}}
		}, wantErr: true},
		{name: "extension without name", mutate: func(c *Config) {
			c.Palette.Extensions = []ExtensionPalette{{Key: "brand"}}
		}, wantErr: true},
		{name: "valid extension", mutate: func(c *Config) {
			c.Palette.Extensions = []ExtensionPalette{{Key: "brand-blue", Name: "Brand Blue", Hex: "#0000ff"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
