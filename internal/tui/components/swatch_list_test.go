package components

import (
	"strings"
	"testing"

	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

func testPalettes() []palette.Palette {
	return append([]palette.Palette{palette.Default()}, palette.Builtins()...)
}

func TestNewSwatchListStartsOnCurrent(t *testing.T) {
	list := NewSwatchList(testPalettes(), "green")

	selected, ok := list.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if selected.Key != "green" {
		t.Fatalf("expected green selected, got %q", selected.Key)
	}
}

func TestSwatchListMoveWraps(t *testing.T) {
	list := NewSwatchList(testPalettes(), palette.DefaultKey)

	list.Move(-1)
	selected, _ := list.Selected()
	if selected.Key != "orange" {
		t.Fatalf("expected wrap to orange, got %q", selected.Key)
	}

	list.Move(1)
	selected, _ = list.Selected()
	if selected.Key != palette.DefaultKey {
		t.Fatalf("expected wrap to default, got %q", selected.Key)
	}
}

func TestSwatchListFilter(t *testing.T) {
	list := NewSwatchList(testPalettes(), "")

	list.SetQuery("GR")
	visible := list.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected gray and green, got %+v", visible)
	}

	list.SetQuery("#981e32")
	selected, ok := list.Selected()
	if !ok || selected.Key != "crimson" {
		t.Fatalf("expected crimson by hex, got %+v", selected)
	}

	list.SetQuery("teal")
	if _, ok := list.Selected(); ok {
		t.Fatal("expected no selection for unmatched filter")
	}
}

func TestSwatchListRender(t *testing.T) {
	list := NewSwatchList(testPalettes(), "blue")
	lines := list.Render(styles.DefaultStyles())

	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[5], "blue") || !strings.Contains(lines[5], "(current)") {
		t.Fatalf("expected current marker on blue, got %q", lines[5])
	}
	if !strings.Contains(lines[5], ">") {
		t.Fatalf("expected cursor on blue, got %q", lines[5])
	}

	list.SetQuery("nothing")
	lines = list.Render(styles.DefaultStyles())
	if len(lines) != 1 || !strings.Contains(lines[0], "No palettes") {
		t.Fatalf("unexpected empty render: %v", lines)
	}
}
