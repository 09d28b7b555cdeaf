// Package tui implements the interactive palette picker.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/tui/components"
	"github.com/wsuwp/colorpalette/internal/tui/styles"
)

// Options configures the picker.
type Options struct {
	Title    string
	Palettes []palette.Palette
	Current  string
	Theme    string
	Input    io.Reader
	Output   io.Writer
}

// Pick runs the picker and returns the chosen palette. ok is false when
// the user quits without choosing.
func Pick(ctx context.Context, opts Options) (chosen palette.Palette, ok bool, err error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	final, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	if err != nil {
		return palette.Palette{}, false, err
	}
	m, _ := final.(Model)
	chosen, ok = m.Chosen()
	return chosen, ok, nil
}

// Model is the bubbletea model behind Pick.
type Model struct {
	title    string
	list     *components.SwatchList
	styles   styles.Styles
	width    int
	chosen   *palette.Palette
	quitting bool
}

const minWidth = 40

// NewModel creates a picker model.
func NewModel(opts Options) Model {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Select a palette"
	}
	return Model{
		title:  title,
		list:   components.NewSwatchList(opts.Palettes, opts.Current),
		styles: styles.BuildStyles(styles.Lookup(opts.Theme)),
	}
}

// Chosen returns the palette selected with enter.
func (m Model) Chosen() (palette.Palette, bool) {
	if m.chosen == nil {
		return palette.Palette{}, false
	}
	return *m.chosen, true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if selected, ok := m.list.Selected(); ok {
				m.chosen = &selected
				return m, tea.Quit
			}
		case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
			m.list.Move(-1)
		case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
			m.list.Move(1)
		case tea.KeyBackspace:
			if query := []rune(m.list.Query); len(query) > 0 {
				m.list.SetQuery(string(query[:len(query)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.list.SetQuery(m.list.Query + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	if m.chosen != nil || m.quitting {
		return ""
	}
	if m.width > 0 && m.width < minWidth {
		return m.styles.Warning.Render(fmt.Sprintf("Terminal too narrow (%d columns).", m.width)) + "\n"
	}

	lines := []string{
		m.styles.Title.Render(m.title),
		m.styles.Muted.Render("Type to filter. Enter to select. Esc to cancel."),
		m.styles.Text.Render(fmt.Sprintf("> %s", m.list.Query)),
		"",
	}
	lines = append(lines, m.list.Render(m.styles)...)
	return strings.Join(lines, "\n") + "\n"
}
