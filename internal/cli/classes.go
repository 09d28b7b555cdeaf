package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/render"
)

var (
	classesArchive bool
	classesExtra   []string
)

func init() {
	rootCmd.AddCommand(classesCmd)
	classesCmd.Flags().BoolVar(&classesArchive, "archive", false, "resolve for a listing view instead of a single item")
	classesCmd.Flags().StringSliceVar(&classesExtra, "class", nil, "existing body classes to extend")
}

// ClassesOutput is the JSON payload of `palette classes`.
type ClassesOutput struct {
	ItemID   string   `json:"item_id"`
	Singular bool     `json:"singular"`
	Classes  []string `json:"classes"`
}

var classesCmd = &cobra.Command{
	Use:   "classes <item-id>",
	Short: "Resolve body classes for an item",
	Long:  "Print the body classes a render of the item would carry, using the configured eligibility rule.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		target := render.Target{
			ItemID:   item.ID,
			Singular: !classesArchive,
			Type:     item.Type,
			Status:   item.Status,
		}
		output := ClassesOutput{
			ItemID:   item.ID,
			Singular: target.Singular,
			Classes:  a.classes.BodyClasses(ctx, classesExtra, target),
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), output)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(output.Classes, " "))
		return nil
	},
}
