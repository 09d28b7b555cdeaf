package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

var palettesItem string

func init() {
	rootCmd.AddCommand(palettesCmd)
	palettesCmd.AddCommand(palettesListCmd)

	for _, cmd := range []*cobra.Command{palettesCmd, palettesListCmd} {
		cmd.Flags().StringVar(&palettesItem, "item", "", "mark the palette this item resolves to")
	}
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List registered palettes",
	Long:  "List the default palette, the built-in table and palettes from extension files and config.",
	Args:  cobra.NoArgs,
	RunE:  runPalettesList,
}

var palettesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered palettes",
	Args:  cobra.NoArgs,
	RunE:  runPalettesList,
}

func runPalettesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	box, err := a.editor.MetaBox(ctx, palettesItem)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if IsJSONOutput() || IsJSONLOutput() {
		if IsJSONLOutput() {
			return WriteOutput(out, box.Options)
		}
		return WriteOutput(out, box)
	}

	rows := make([][]string, 0, len(box.Options))
	for _, opt := range box.Options {
		current := ""
		if palettesItem != "" {
			current = formatYesNo(opt.Current)
		}
		rows = append(rows, []string{
			escapeCell(styles.Swatch(opt.Hex)),
			opt.Key,
			opt.Name,
			opt.Hex,
			current,
		})
	}
	if err := writeTable(out, []string{"", "KEY", "NAME", "HEX", "CURRENT"}, rows); err != nil {
		return err
	}
	if palettesItem != "" {
		fmt.Fprintf(out, "\n%s resolves to %s\n", palettesItem, box.Current)
	}
	return nil
}
