package components

import (
	"fmt"
	"strings"

	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are commands the user can run next.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	Command     string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	lines := []string{styleSet.Muted.Render(e.Title)}

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyItems returns an empty state for when no items exist.
func EmptyItems() EmptyState {
	return EmptyState{
		Title:    "No items yet",
		Subtitle: "Items are pages and posts that can carry a palette.",
		Suggestions: []Suggestion{
			{Command: "palette item create --title About", Description: "create a page"},
		},
	}
}

// EmptyHistory returns an empty state for an item with no palette events.
func EmptyHistory(itemID string) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("No palette history for %s", itemID),
		Subtitle: "Assignments and rejected saves are recorded here.",
		Suggestions: []Suggestion{
			{Command: fmt.Sprintf("palette assign %s <palette>", itemID), Description: "assign a palette"},
		},
	}
}

// EmptyPalettesFiltered returns an empty state for a filter that matches nothing.
func EmptyPalettesFiltered(filter string) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("No palettes match '%s'", filter),
		Subtitle: "Backspace to edit the filter.",
	}
}
