package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/editor"
	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/tui"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick <item-id>",
	Short: "Choose a palette for an item interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "the palette picker requires an interactive terminal",
				Hint:     "Run with a TTY, or assign directly",
				NextStep: fmt.Sprintf("palette assign %s <palette>", args[0]),
			}
		}

		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		item, err := a.items.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load item %s: %w", args[0], err)
		}
		box, err := a.editor.MetaBox(ctx, item.ID)
		if err != nil {
			return err
		}

		palettes := make([]palette.Palette, 0, len(box.Options))
		for _, opt := range box.Options {
			palettes = append(palettes, opt.Palette)
		}

		chosen, ok, err := tui.Pick(ctx, tui.Options{
			Title:    fmt.Sprintf("Palette for %q", item.Title),
			Palettes: palettes,
			Current:  box.Current,
			Theme:    GetConfig().TUI.Theme,
		})
		if err != nil {
			return fmt.Errorf("picker failed: %w", err)
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No palette chosen.")
			return nil
		}

		result, err := a.editor.Save(ctx, editor.SaveRequest{
			ItemID: item.ID,
			Fields: map[string]string{editor.FieldName: chosen.Key},
		})
		if err != nil {
			return err
		}
		return writeSaveResult(cmd, result)
	},
}
