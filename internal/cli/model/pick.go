// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/plotfont/internal/cli/styles"
	"github.com/bnema/plotfont/internal/domain/entity"
)

const pickWindowSize = 15

// PickModel is the Bubble Tea model for the interactive font picker. Typing
// filters the list; enter selects a family.
type PickModel struct {
	theme *styles.Theme
	keys  pickKeyMap
	help  help.Model

	faces    []entity.FontFace
	filtered []entity.FontFace
	query    string

	selectedIdx int
	width       int
	height      int

	// Choice is the selected face after the program finishes, or nil when
	// the picker was cancelled.
	Choice *entity.FontFace
}

// pickKeyMap defines keybindings for the picker.
type pickKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k pickKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k pickKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Clear, k.Help, k.Quit},
	}
}

func defaultPickKeyMap() pickKeyMap {
	return pickKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewPickModel creates a picker over the given faces.
func NewPickModel(theme *styles.Theme, faces []entity.FontFace) *PickModel {
	return &PickModel{
		theme:    theme,
		keys:     defaultPickKeyMap(),
		help:     help.New(),
		faces:    faces,
		filtered: faces,
	}
}

// Init implements tea.Model.
func (m *PickModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Choice = nil
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.filtered) > 0 {
				choice := m.filtered[m.selectedIdx]
				m.Choice = &choice
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selectedIdx < len(m.filtered)-1 {
				m.selectedIdx++
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.query = ""
			m.refilter()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case msg.Type == tea.KeyBackspace:
			if m.query != "" {
				_, size := utf8.DecodeLastRuneInString(m.query)
				m.query = m.query[:len(m.query)-size]
				m.refilter()
			}
			return m, nil
		case msg.Type == tea.KeyRunes:
			m.query += string(msg.Runes)
			m.refilter()
			return m, nil
		}
	}

	return m, nil
}

func (m *PickModel) refilter() {
	m.selectedIdx = 0
	if m.query == "" {
		m.filtered = m.faces
		return
	}
	query := strings.ToLower(m.query)
	filtered := make([]entity.FontFace, 0, len(m.faces))
	for _, face := range m.faces {
		if strings.Contains(strings.ToLower(face.Family), query) {
			filtered = append(filtered, face)
		}
	}
	m.filtered = filtered
}

// View implements tea.Model.
func (m *PickModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Pick a plot font"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("filter: %s", m.query)))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.theme.Subtle.Render("  no matching fonts"))
		b.WriteString("\n")
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		face := m.filtered[i]
		if i == m.selectedIdx {
			b.WriteString(m.theme.ListItemSelected.Render("> " + face.Family))
		} else {
			b.WriteString(m.theme.ListItem.Render(face.Family))
		}
		b.WriteString("\n")
	}
	if end < len(m.filtered) {
		b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("  … %d more", len(m.filtered)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// window returns the visible slice bounds keeping the selection in view.
func (m *PickModel) window() (int, int) {
	start := 0
	if m.selectedIdx >= pickWindowSize {
		start = m.selectedIdx - pickWindowSize + 1
	}
	end := start + pickWindowSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	return start, end
}
