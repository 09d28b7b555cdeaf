// Package cli implements the palette command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/config"
	"github.com/wsuwp/colorpalette/internal/logging"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	logLevel       string
	nonInteractive bool
	noProgress     bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "palette",
	Short:         "Assign color palettes to pages",
	Long:          "Manage page color palettes: list the registry, assign palettes to items, and resolve render classes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/colorpalette/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or launch the picker")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "suppress progress output")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var preflight *PreflightError
		if errors.As(err, &preflight) {
			fmt.Fprintln(os.Stderr, preflight.Detail())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	appConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration, or defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput writes v as indented JSON, or one line per element with --jsonl.
func WriteOutput(out io.Writer, v any) error {
	if IsJSONLOutput() {
		enc := json.NewEncoder(out)
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				if err := enc.Encode(rv.Index(i).Interface()); err != nil {
					return err
				}
			}
			return nil
		}
		return enc.Encode(v)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PreflightError explains why a command cannot run and what to do instead.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

// Detail renders the message with its hint and next step.
func (e *PreflightError) Detail() string {
	out := "Error: " + e.Message
	if e.Hint != "" {
		out += "\nHint: " + e.Hint
	}
	if e.NextStep != "" {
		out += "\nNext: " + e.NextStep
	}
	return out
}
