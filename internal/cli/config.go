package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/config"
)

var (
	initForce bool

	configDirFunc = config.DefaultConfigDir
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := createConfigFile()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.Status, result.Message)
		}
		if result.Status == "failed" {
			return fmt.Errorf("config init failed: %s", result.Message)
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return WriteOutput(cmd.OutOrStdout(), GetConfig())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(configDirFunc(), "config.yaml"))
		return nil
	},
}

type initResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func createConfigFile() initResult {
	result := initResult{Name: "Config file"}
	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.Status = "skipped"
		result.Message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.Status = "failed"
		result.Message = fmt.Sprintf("failed to create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
		result.Status = "failed"
		result.Message = fmt.Sprintf("failed to write %s: %v", path, err)
		return result
	}

	result.Status = "done"
	result.Message = fmt.Sprintf("wrote %s", path)
	return result
}
