package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/wsuwp/colorpalette/internal/editor"
	"github.com/wsuwp/colorpalette/internal/models"
)

type cliEnv struct {
	dir        string
	configPath string
}

func newCLIEnv(t *testing.T, extraConfig string) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("PALETTE_NON_INTERACTIVE", "1")

	configPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`database:
  path: %s
logging:
  level: error
  format: json
%s`, filepath.Join(dir, "palette.db"), extraConfig)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	t.Cleanup(func() {
		resetFlags(rootCmd)
		appConfig = nil
	})
	return &cliEnv{dir: dir, configPath: configPath}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return e.runContext(t, context.Background(), args...)
}

func (e *cliEnv) runContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", e.configPath, "--no-progress"}, args...))
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func (e *cliEnv) createItem(t *testing.T, args ...string) *models.Item {
	t.Helper()
	out, err := e.run(t, append([]string{"item", "create", "--json"}, args...)...)
	require.NoError(t, err, out)

	var item models.Item
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	require.NotEmpty(t, item.ID)
	return &item
}

func TestPalettesListJSON(t *testing.T) {
	env := newCLIEnv(t, "")

	out, err := env.run(t, "palettes", "--json")
	require.NoError(t, err, out)

	var box editor.MetaBox
	require.NoError(t, json.Unmarshal([]byte(out), &box))
	require.Len(t, box.Options, 7)
	require.Equal(t, "default", box.Options[0].Key)
	require.Equal(t, "orange", box.Options[6].Key)
}

func TestPalettesListIncludesConfigExtensions(t *testing.T) {
	env := newCLIEnv(t, `palette:
  extensions:
    - key: testing
      name: Testing
      hex: "#000000"
    - key: green
      name: Forest
      hex: "#228b22"
`)

	out, err := env.run(t, "palettes", "list")
	require.NoError(t, err, out)
	require.Contains(t, out, "testing")
	require.Contains(t, out, "Forest")
	require.NotContains(t, out, "#8f7e35")
}

func TestPalettesListIncludesExtensionFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brand.yaml"), []byte(`name: brand
palettes:
  - key: teal
    name: Teal
    hex: "#008080"
`), 0o644))
	env := newCLIEnv(t, fmt.Sprintf("palette:\n  extension_dirs: [%q]\n", dir))

	out, err := env.run(t, "palettes", "--jsonl")
	require.NoError(t, err, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	require.Contains(t, lines[7], `"teal"`)
}

func TestAssignClassesAndHistory(t *testing.T) {
	env := newCLIEnv(t, "")
	page := env.createItem(t, "--title", "About")

	out, err := env.run(t, "assign", page.ID, "green")
	require.NoError(t, err, out)
	require.Contains(t, out, "Assigned green")

	out, err = env.run(t, "classes", page.ID, "--class", "home", "--class", "page")
	require.NoError(t, err, out)
	require.Equal(t, "home page palette-green palette-text-green", strings.TrimSpace(out))

	out, err = env.run(t, "classes", page.ID, "--archive")
	require.NoError(t, err, out)
	require.Equal(t, "palette-default palette-text-default", strings.TrimSpace(out))

	out, err = env.run(t, "assign", page.ID, "invalid")
	require.Error(t, err)
	require.Contains(t, out, "Rejected")

	out, err = env.run(t, "history", page.ID, "--json")
	require.NoError(t, err, out)
	var events []models.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 3)
	require.Equal(t, models.EventTypeItemCreated, events[0].Type)
	require.Equal(t, models.EventTypePaletteAssigned, events[1].Type)
	require.Equal(t, models.EventTypePaletteRejected, events[2].Type)

	out, err = env.run(t, "history", page.ID, "--limit", "1", "--json")
	require.NoError(t, err, out)
	events = nil
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	require.Equal(t, models.EventTypePaletteRejected, events[0].Type)

	out, err = env.run(t, "history", page.ID)
	require.NoError(t, err, out)
	require.Contains(t, out, "default -> green")
}

func TestAssignSkipsPosts(t *testing.T) {
	env := newCLIEnv(t, "")
	post := env.createItem(t, "--type", "post")

	out, err := env.run(t, "assign", post.ID, "green", "--json")
	require.NoError(t, err, out)

	var result editor.SaveResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, editor.OutcomeSkipped, result.Outcome)
	require.Equal(t, editor.SkipWrongType, result.Reason)
}

func TestEligibleTypeDrivesSaveAndRender(t *testing.T) {
	env := newCLIEnv(t, "palette:\n  eligible_type: post\n")
	post := env.createItem(t, "--type", "post")
	page := env.createItem(t, "--type", "page")

	out, err := env.run(t, "assign", post.ID, "green")
	require.NoError(t, err, out)

	out, err = env.run(t, "classes", post.ID)
	require.NoError(t, err, out)
	require.Equal(t, "palette-green palette-text-green", strings.TrimSpace(out))

	out, err = env.run(t, "assign", page.ID, "green", "--json")
	require.NoError(t, err, out)
	var result editor.SaveResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, editor.SkipWrongType, result.Reason)

	out, err = env.run(t, "classes", page.ID)
	require.NoError(t, err, out)
	require.Equal(t, "palette-default palette-text-default", strings.TrimSpace(out))
}

func TestAssignUnknownItem(t *testing.T) {
	env := newCLIEnv(t, "")

	_, err := env.run(t, "assign", "missing", "green")
	require.Error(t, err)
}

func TestItemListAndShow(t *testing.T) {
	env := newCLIEnv(t, "")

	out, err := env.run(t, "item", "list")
	require.NoError(t, err, out)
	require.Contains(t, out, "No items yet")

	page := env.createItem(t, "--title", "Landing", "--id", "page-1")
	require.Equal(t, "page-1", page.ID)
	_, err = env.run(t, "assign", page.ID, "blue")
	require.NoError(t, err)

	out, err = env.run(t, "item", "show", page.ID, "--json")
	require.NoError(t, err, out)
	var view struct {
		ID      string            `json:"id"`
		Palette string            `json:"palette"`
		State   string            `json:"state"`
		Meta    map[string]string `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, "blue", view.Palette)
	require.Equal(t, "assigned", view.State)
	require.Equal(t, "blue", view.Meta["_color_palette"])

	out, err = env.run(t, "item", "list")
	require.NoError(t, err, out)
	require.Contains(t, out, "Landing")
	require.Contains(t, out, "blue")
}

func TestItemStatusGuardsAutoDraft(t *testing.T) {
	env := newCLIEnv(t, "")
	page := env.createItem(t)

	_, err := env.run(t, "item", "status", page.ID, "auto-draft")
	require.NoError(t, err)

	out, err := env.run(t, "assign", page.ID, "green", "--json")
	require.NoError(t, err, out)
	var result editor.SaveResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, editor.SkipAutoDraft, result.Reason)
}

func TestExportCountsStaleAssignments(t *testing.T) {
	env := newCLIEnv(t, `palette:
  extensions:
    - key: testing
      name: Testing
      hex: "#000000"
`)
	page := env.createItem(t)
	_, err := env.run(t, "assign", page.ID, "testing")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(env.configPath, []byte(fmt.Sprintf(`database:
  path: %s
logging:
  level: error
`, filepath.Join(env.dir, "palette.db"))), 0o644))

	out, err := env.run(t, "export", "--json")
	require.NoError(t, err, out)
	var status ExportStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	require.Len(t, status.Items, 1)
	require.Equal(t, 1, status.Stale)
	require.Equal(t, "default", status.Items[0].Palette)
}

func TestPickRequiresInteractiveTerminal(t *testing.T) {
	env := newCLIEnv(t, "")

	_, err := env.run(t, "pick", "page-1")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight))
	require.Contains(t, preflight.Detail(), "palette assign page-1")
}

func TestServeStopsOnCanceledContext(t *testing.T) {
	env := newCLIEnv(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := env.runContext(t, ctx, "serve", "--port", "50197")
	require.NoError(t, err)
}

func TestConfigShowUsesFile(t *testing.T) {
	env := newCLIEnv(t, "")

	out, err := env.run(t, "config", "show")
	require.NoError(t, err, out)
	require.Contains(t, out, filepath.Join(env.dir, "palette.db"))
}
