package components

import (
	"strings"
	"testing"

	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

func TestEmptyStateRender(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("basic empty state", func(t *testing.T) {
		es := EmptyState{Title: "No items found"}
		result := es.Render(styleSet)
		if !strings.Contains(result, "No items found") {
			t.Errorf("Expected title in output, got: %s", result)
		}
	})

	t.Run("empty state with suggestions", func(t *testing.T) {
		es := EmptyState{
			Title: "No items",
			Suggestions: []Suggestion{
				{Command: "palette item create", Description: "create new"},
			},
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Get started") {
			t.Errorf("Expected 'Get started' header, got: %s", result)
		}
		if !strings.Contains(result, "palette item create") {
			t.Errorf("Expected command in output, got: %s", result)
		}
	})
}

func TestEmptyStateRenderCompact(t *testing.T) {
	styleSet := styles.DefaultStyles()

	es := EmptyState{
		Title:       "Empty",
		Suggestions: []Suggestion{{Command: "add item"}},
	}
	result := es.RenderCompact(styleSet)
	if !strings.Contains(result, "Try: add item") {
		t.Errorf("Expected suggestion hint in compact output, got: %s", result)
	}
}

func TestPrebuiltEmptyStates(t *testing.T) {
	styleSet := styles.DefaultStyles()

	tests := []struct {
		name     string
		es       EmptyState
		expected []string
	}{
		{
			name:     "EmptyItems",
			es:       EmptyItems(),
			expected: []string{"No items", "palette item create"},
		},
		{
			name:     "EmptyHistory",
			es:       EmptyHistory("page-1"),
			expected: []string{"page-1", "palette assign page-1"},
		},
		{
			name:     "EmptyPalettesFiltered",
			es:       EmptyPalettesFiltered("teal"),
			expected: []string{"'teal'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.es.Render(styleSet)
			for _, exp := range tt.expected {
				if !strings.Contains(result, exp) {
					t.Errorf("Expected %q in %s output, got: %s", exp, tt.name, result)
				}
			}
		})
	}
}
