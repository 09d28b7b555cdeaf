package cli

import (
	"fmt"

	"github.com/wsuwp/colorpalette/internal/editor"
	"github.com/wsuwp/colorpalette/internal/models"
	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

func formatOutcome(result *editor.SaveResult, styleSet styles.Styles) string {
	switch result.Outcome {
	case editor.OutcomeSaved:
		line := fmt.Sprintf("Assigned %s to %s", result.Palette, result.ItemID)
		if result.Previous != "" && result.Previous != result.Palette {
			line += fmt.Sprintf(" (was %s)", result.Previous)
		}
		return styleSet.Success.Render(line)
	case editor.OutcomeRejected:
		return styleSet.Error.Render(fmt.Sprintf("Rejected %q for %s: palette not registered", result.Palette, result.ItemID))
	default:
		return styleSet.Warning.Render(fmt.Sprintf("Skipped %s: %s", result.ItemID, skipReasonText(result.Reason)))
	}
}

func skipReasonText(reason editor.SkipReason) string {
	switch reason {
	case editor.SkipAutosave:
		return "autosave"
	case editor.SkipWrongType:
		return "item type cannot carry a palette"
	case editor.SkipAutoDraft:
		return "item is an auto-draft"
	case editor.SkipMissingField:
		return "no palette submitted"
	default:
		return string(reason)
	}
}

func formatState(state palette.State, styleSet styles.Styles) string {
	switch state {
	case palette.StateAssignedValid:
		return styleSet.Success.Render(string(state))
	case palette.StateAssignedStale:
		return styleSet.Warning.Render(string(state))
	default:
		return styleSet.Muted.Render(string(state))
	}
}

func formatItemStatus(status models.ItemStatus, styleSet styles.Styles) string {
	switch status {
	case models.ItemStatusPublish:
		return styleSet.Success.Render(string(status))
	case models.ItemStatusAutoDraft:
		return styleSet.Muted.Render(string(status))
	default:
		return styleSet.Text.Render(string(status))
	}
}

func cliStyles() styles.Styles {
	return styles.BuildStyles(styles.Lookup(GetConfig().TUI.Theme))
}
