package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// Settings view layout constants
const (
	settingsChrome = 7  // Title, borders and help around the table
	keyColumnMin   = 28 // Fits the longest dotted config key
	valueColumnMin = 10
)

// SettingsKeyMap defines the key bindings for the settings view.
type SettingsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SettingsModel shows the effective game config in a scrollable table.
type SettingsModel struct {
	title    string
	settings []config.Setting
	table    table.Model
	help     help.Model
	keys     SettingsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSettingsModel creates a settings view. title names where the config
// came from.
func NewSettingsModel(title string, settings []config.Setting, width, height int) SettingsModel {
	m := SettingsModel{
		title:    title,
		settings: settings,
		help:     help.New(),
		keys:     DefaultSettingsKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable builds a table sized to the current terminal.
func (m *SettingsModel) createTable() table.Model {
	keyWidth := keyColumnMin
	for _, s := range m.settings {
		keyWidth = max(keyWidth, len(s.Key))
	}
	valueWidth := max(m.width-keyWidth-8, valueColumnMin)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: keyWidth},
			{Title: "Value", Width: valueWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-settingsChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the settings.
func (m *SettingsModel) updateTableRows() {
	rows := make([]table.Row, len(m.settings))
	for i, s := range m.settings {
		rows[i] = table.Row{s.Key, s.Value}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the settings table.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("FLAPPY CONFIG - %s", m.title), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunSettings shows the settings table until the user quits.
func RunSettings(title string, settings []config.Setting, width, height int) error {
	p := tea.NewProgram(
		NewSettingsModel(title, settings, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
