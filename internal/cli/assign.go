package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/editor"
)

var assignAutosave bool

func init() {
	rootCmd.AddCommand(assignCmd)
	assignCmd.Flags().BoolVar(&assignAutosave, "autosave", false, "submit as an autosave (skipped)")
}

var assignCmd = &cobra.Command{
	Use:   "assign <item-id> <palette>",
	Short: "Assign a palette to an item",
	Long: `Submit a palette for an item through the editor save path.

Autosaves, items that are not the eligible type and auto-drafts are skipped.
Unknown palettes are rejected and leave the stored value unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.editor.Save(ctx, editor.SaveRequest{
			ItemID:   args[0],
			Autosave: assignAutosave,
			Fields:   map[string]string{editor.FieldName: args[1]},
		})
		if err != nil {
			return err
		}
		return writeSaveResult(cmd, result)
	},
}

func writeSaveResult(cmd *cobra.Command, result *editor.SaveResult) error {
	out := cmd.OutOrStdout()
	if IsJSONOutput() || IsJSONLOutput() {
		if err := WriteOutput(out, result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, formatOutcome(result, cliStyles()))
	}

	if result.Outcome == editor.OutcomeRejected {
		return fmt.Errorf("palette %q is not registered", result.Palette)
	}
	return nil
}
