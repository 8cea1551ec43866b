package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vperelygin/moonlander/internal/storage"
)

// Scoreboard layout constants
const (
	maxFlightsShown = 100 // Max flight log entries to load
)

// scoreboardView selects which slice of the flight log is displayed.
type scoreboardView int

const (
	viewTopLandings scoreboardView = iota
	viewRecentFlights
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.SwitchView, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "landings/all flights"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the flight log screen.
type ScoreboardModel struct {
	store    *storage.Store
	view     scoreboardView
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	loadErr  error
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		view:   viewTopLandings,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload fetches rows for the current view and rebuilds the table.
func (m *ScoreboardModel) reload() {
	var (
		flights []storage.FlightRecord
		err     error
	)
	if m.view == viewTopLandings {
		flights, err = m.store.TopFlights(maxFlightsShown)
	} else {
		flights, err = m.store.RecentFlights(maxFlightsShown)
	}
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 18},
		{Title: "Score", Width: 8},
		{Title: "Fuel", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(flights))
	for i, f := range flights {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			f.Outcome,
			fmt.Sprintf("%d", f.Score),
			fmt.Sprintf("%d", f.FuelLeft),
			fmt.Sprintf("%d", f.Duration),
			f.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := m.height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
	t.SetStyles(styles)

	m.table = t
}

// Init initializes the scoreboard.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchView):
			if m.view == viewTopLandings {
				m.view = viewRecentFlights
			} else {
				m.view = viewTopLandings
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Moonlander - Top Landings"
	if m.view == viewRecentFlights {
		title = "Moonlander - Flight Log"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	if m.loadErr != nil {
		return fmt.Sprintf("%s\n\ncould not load flight log: %v\n", titleStyle.Render(title), m.loadErr)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive flight log and blocks until the user
// quits it.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
