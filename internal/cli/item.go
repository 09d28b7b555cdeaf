package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/events"
	"github.com/wsuwp/colorpalette/internal/models"
	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/tui/components"
)

var (
	// item create flags
	itemCreateType   string
	itemCreateStatus string
	itemCreateTitle  string
	itemCreateID     string

	// item list flags
	itemListType string
)

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemCreateCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemShowCmd)
	itemCmd.AddCommand(itemStatusCmd)

	itemCreateCmd.Flags().StringVar(&itemCreateType, "type", string(models.ItemTypePage), "item type (page, post, ...)")
	itemCreateCmd.Flags().StringVar(&itemCreateStatus, "status", string(models.ItemStatusPublish), "item status (publish, draft, auto-draft)")
	itemCreateCmd.Flags().StringVar(&itemCreateTitle, "title", "", "item title")
	itemCreateCmd.Flags().StringVar(&itemCreateID, "id", "", "item ID (default: generated)")

	itemListCmd.Flags().StringVar(&itemListType, "type", "", "filter by type")
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage content items",
}

var itemCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a content item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		item := &models.Item{
			ID:     strings.TrimSpace(itemCreateID),
			Type:   models.ItemType(strings.TrimSpace(itemCreateType)),
			Status: models.ItemStatus(strings.TrimSpace(itemCreateStatus)),
			Title:  itemCreateTitle,
		}
		if err := a.items.Create(ctx, item); err != nil {
			return err
		}
		if err := events.LogItemCreated(ctx, a.events, item); err != nil {
			return fmt.Errorf("failed to record item event: %w", err)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), item)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", item.Type, item.ID)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List content items with their resolved palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var filter *models.ItemType
		if itemListType != "" {
			t := models.ItemType(itemListType)
			filter = &t
		}
		items, err := a.items.List(ctx, filter)
		if err != nil {
			return err
		}

		views := make([]ItemView, 0, len(items))
		for _, item := range items {
			views = append(views, a.itemView(ctx, item))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, views)
		}
		if len(views) == 0 {
			fmt.Fprintln(out, components.EmptyItems().Render(cliStyles()))
			return nil
		}

		styleSet := cliStyles()
		rows := make([][]string, 0, len(views))
		for _, v := range views {
			rows = append(rows, []string{
				v.ID,
				string(v.Type),
				escapeCell(formatItemStatus(v.Status, styleSet)),
				v.Title,
				v.Palette,
				escapeCell(formatState(v.State, styleSet)),
			})
		}
		return writeTable(out, []string{"ID", "TYPE", "STATUS", "TITLE", "PALETTE", "STATE"}, rows)
	},
}

var itemShowCmd = &cobra.Command{
	Use:   "show <item-id>",
	Short: "Show an item, its metadata and its palette",
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
		meta, err := a.meta.ListMeta(ctx, item.ID)
		if err != nil {
			return err
		}

		view := a.itemView(ctx, item)
		view.Meta = meta

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, view)
		}

		styleSet := cliStyles()
		rows := [][]string{
			{"ID", view.ID},
			{"Type", string(view.Type)},
			{"Status", escapeCell(formatItemStatus(view.Status, styleSet))},
			{"Title", view.Title},
			{"Palette", view.Palette},
			{"State", escapeCell(formatState(view.State, styleSet))},
		}
		keys := make([]string, 0, len(meta))
		for key := range meta {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			rows = append(rows, []string{"Meta " + key, meta[key]})
		}
		return writeTable(out, nil, rows)
	},
}

var itemStatusCmd = &cobra.Command{
	Use:   "status <item-id> <status>",
	Short: "Change an item's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.items.UpdateStatus(ctx, args[0], models.ItemStatus(args[1])); err != nil {
			return err
		}
		if !IsJSONOutput() && !IsJSONLOutput() {
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s to %s\n", args[0], args[1])
		}
		return nil
	},
}

// ItemView is an item with its resolved palette.
type ItemView struct {
	*models.Item
	Palette string            `json:"palette"`
	State   palette.State     `json:"state"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func (a *app) itemView(ctx context.Context, item *models.Item) ItemView {
	state, err := a.service.State(ctx, item.ID)
	if err != nil {
		state = palette.StateUnassigned
	}
	return ItemView{
		Item:    item,
		Palette: a.service.ResolveKey(ctx, item.ID),
		State:   state,
	}
}
