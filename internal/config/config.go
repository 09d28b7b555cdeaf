// Package config loads colorpalette configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/wsuwp/colorpalette/internal/palette"
)

const (
	// EnvPrefix prefixes every environment override (PALETTE_DATABASE_PATH, ...).
	EnvPrefix = "PALETTE"

	DefaultMetaKey         = "_color_palette"
	DefaultEligibleType    = "page"
	DefaultEligibilityRule = `singular && item.type == "page"`
	DefaultDaemonPort      = 50151
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Palette  PaletteConfig  `mapstructure:"palette"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
	TUI      TUIConfig      `mapstructure:"tui"`
}

// DatabaseConfig locates the SQLite metadata store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PaletteConfig controls registry extension and assignment behavior.
type PaletteConfig struct {
	// MetaKey is the item metadata attribute holding the assigned key.
	MetaKey string `mapstructure:"meta_key"`

	// EligibleType is the item type the save path accepts.
	EligibleType string `mapstructure:"eligible_type"`

	// EligibilityRule is an expr expression over singular and item.{id,type,status}.
	// Empty or left at the default, it follows EligibleType.
	EligibilityRule string `mapstructure:"eligibility_rule"`

	// ExtensionDirs are searched for palette YAML files, first hit wins.
	ExtensionDirs []string `mapstructure:"extension_dirs"`

	// Extensions are inline palettes layered over the built-in table.
	Extensions []ExtensionPalette `mapstructure:"extensions"`
}

// ExtensionPalette is an inline palette entry.
type ExtensionPalette struct {
	Key  string `mapstructure:"key"`
	Name string `mapstructure:"name"`
	Hex  string `mapstructure:"hex"`
}

// DaemonConfig controls the gRPC listener.
type DaemonConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// RateLimit caps requests per method; zero values use the built-in limits.
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig controls the daemon's token buckets.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// TUIConfig controls the interactive picker.
type TUIConfig struct {
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(DefaultDataDir(), "palette.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Palette: PaletteConfig{
			MetaKey:         DefaultMetaKey,
			EligibleType:    DefaultEligibleType,
			EligibilityRule: DefaultEligibilityRule,
		},
		Daemon: DaemonConfig{
			Host: "127.0.0.1",
			Port: DefaultDaemonPort,
			RateLimit: RateLimitConfig{
				Enabled: true,
			},
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

// DefaultConfigDir returns the directory holding config.yaml.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "colorpalette")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".colorpalette"
	}
	return filepath.Join(home, ".config", "colorpalette")
}

// DefaultDataDir returns the directory holding the database.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "colorpalette")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".colorpalette"
	}
	return filepath.Join(home, ".local", "share", "colorpalette")
}

// Load reads configuration. An empty path searches the default config dir;
// a missing file is not an error, an explicit path that is missing is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("palette.meta_key", def.Palette.MetaKey)
	v.SetDefault("palette.eligible_type", def.Palette.EligibleType)
	v.SetDefault("palette.eligibility_rule", def.Palette.EligibilityRule)
	v.SetDefault("palette.extension_dirs", []string{})
	v.SetDefault("daemon.host", def.Daemon.Host)
	v.SetDefault("daemon.port", def.Daemon.Port)
	v.SetDefault("daemon.rate_limit.enabled", def.Daemon.RateLimit.Enabled)
	v.SetDefault("daemon.rate_limit.requests_per_second", def.Daemon.RateLimit.RequestsPerSecond)
	v.SetDefault("daemon.rate_limit.burst", def.Daemon.RateLimit.Burst)
	v.SetDefault("tui.theme", def.TUI.Theme)
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path is required")
	}
	if strings.TrimSpace(c.Palette.MetaKey) == "" {
		return errors.New("palette.meta_key is required")
	}
	if strings.TrimSpace(c.Palette.EligibleType) == "" {
		return errors.New("palette.eligible_type is required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if c.Daemon.Port < 0 || c.Daemon.Port > 65535 {
		return fmt.Errorf("daemon.port must be between 0 and 65535, got %d", c.Daemon.Port)
	}
	if c.Daemon.RateLimit.RequestsPerSecond < 0 || c.Daemon.RateLimit.Burst < 0 {
		return errors.New("daemon.rate_limit values must not be negative")
	}
	for i, ext := range c.Palette.Extensions {
		if err := ext.validate(); err != nil {
			return fmt.Errorf("palette.extensions[%d]: %w", i, err)
		}
	}
	return nil
}

// Inline palettes follow the same rules as palette files.
func (e ExtensionPalette) validate() error {
	switch {
	case strings.TrimSpace(e.Key) == "":
		return errors.New("key is required")
	case palette.SanitizeKey(e.Key) != e.Key:
		return fmt.Errorf("key %q must be lowercase letters, digits, '-' or '_'", e.Key)
	case e.Key == palette.DefaultKey:
		return fmt.Errorf("key %q cannot redefine the default palette", e.Key)
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("key %q: name is required", e.Key)
	}
	return nil
}

// Template is written by `palette config init`.
const Template = `# Color Palette Configuration File
#
# database.path defaults to $XDG_DATA_HOME/colorpalette/palette.db.
# Every key can be overridden with PALETTE_<SECTION>_<KEY>, e.g. PALETTE_DATABASE_PATH.

logging:
  level: info         # trace, debug, info, warn, error
  format: console     # console or json

palette:
  meta_key: _color_palette
  eligible_type: page
  eligibility_rule: 'singular && item.type == "page"'  # default follows eligible_type
  extension_dirs: []  # directories of palette YAML files
  extensions: []      # inline palettes: [{key: testing, name: Testing, hex: "#000000"}]

daemon:
  host: 127.0.0.1
  port: 50151
  rate_limit:
    enabled: true
    requests_per_second: 0  # 0 keeps the per-method defaults
    burst: 0

tui:
  theme: default      # default or high-contrast
`
