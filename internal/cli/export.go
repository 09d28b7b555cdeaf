package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/palette"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export palettes and assignments",
	Long:  "Export the palette registry and every item's resolved palette for automation or reporting.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.items.List(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		status := ExportStatus{
			MetaKey:  a.service.MetaKey(),
			Palettes: a.service.Registry().Palettes().List(),
			Items:    make([]ItemView, 0, len(items)),
		}
		for _, item := range items {
			view := a.itemView(ctx, item)
			switch view.State {
			case palette.StateAssignedValid:
				status.Assigned++
			case palette.StateAssignedStale:
				status.Stale++
			}
			status.Items = append(status.Items, view)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, status)
		}

		writer := tabwriter.NewWriter(out, 0, 8, tablePadding, ' ', 0)
		fmt.Fprintf(writer, "Palettes:\t%d\n", len(status.Palettes))
		fmt.Fprintf(writer, "Items:\t%d\n", len(status.Items))
		fmt.Fprintf(writer, "Assigned:\t%d\n", status.Assigned)
		fmt.Fprintf(writer, "Stale:\t%d\n", status.Stale)
		if err := writer.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(out, "Use --json for full export output.")
		return nil
	},
}

// ExportStatus is the payload returned by `palette export`.
type ExportStatus struct {
	MetaKey  string            `json:"meta_key"`
	Palettes []palette.Palette `json:"palettes"`
	Items    []ItemView        `json:"items"`
	Assigned int               `json:"assigned"`
	Stale    int               `json:"stale"`
}
