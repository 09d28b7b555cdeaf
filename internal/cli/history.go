package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/models"
	"github.com/wsuwp/colorpalette/internal/tui/components"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "show the newest N events")
}

var historyCmd = &cobra.Command{
	Use:   "history <item-id>",
	Short: "Show palette events for an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		events, err := a.events.ListByEntity(ctx, models.EntityTypeItem, args[0], historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, events)
		}
		if len(events) == 0 {
			fmt.Fprintln(out, components.EmptyHistory(args[0]).Render(cliStyles()))
			return nil
		}

		rows := make([][]string, 0, len(events))
		for _, event := range events {
			rows = append(rows, []string{
				event.Timestamp.Local().Format(time.DateTime),
				string(event.Type),
				describeEvent(event),
			})
		}
		return writeTable(out, []string{"TIME", "EVENT", "DETAIL"}, rows)
	},
}

func describeEvent(event *models.Event) string {
	switch event.Type {
	case models.EventTypePaletteAssigned:
		var payload models.PaletteAssignedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return "-"
		}
		if payload.Previous == "" {
			return payload.Palette
		}
		return fmt.Sprintf("%s -> %s", payload.Previous, payload.Palette)
	case models.EventTypePaletteRejected:
		var payload models.PaletteRejectedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return "-"
		}
		return fmt.Sprintf("%q: %s", payload.Requested, payload.Reason)
	case models.EventTypeItemCreated:
		var item models.Item
		if err := json.Unmarshal(event.Payload, &item); err != nil {
			return "-"
		}
		return fmt.Sprintf("%s %q", item.Type, item.Title)
	default:
		return "-"
	}
}
