package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/valentine-arcade/internal/storage"
)

// Responses viewer layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the tally sidebar
	sidebarWidth       = 20 // Width of the tally sidebar
)

// ResponseSource is the part of the response store the viewer reads.
type ResponseSource interface {
	RecentResponses(limit int) ([]storage.Response, error)
	AnswerCounts() ([]storage.AnswerCount, error)
}

// ResponsesKeyMap defines the key bindings for the responses viewer.
type ResponsesKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResponsesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResponsesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
	}
}

// DefaultResponsesKeyMap returns default key bindings.
func DefaultResponsesKeyMap() ResponsesKeyMap {
	return ResponsesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResponsesModel lists collected answers with a tally per answer.
type ResponsesModel struct {
	source      ResponseSource
	limit       int
	responses   []storage.Response
	counts      []storage.AnswerCount
	err         error
	table       table.Model
	help        help.Model
	keys        ResponsesKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewResponsesModel creates a viewer showing at most limit responses.
func NewResponsesModel(source ResponseSource, limit, width, height int) ResponsesModel {
	m := ResponsesModel{
		source:      source,
		limit:       limit,
		keys:        DefaultResponsesKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResponsesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Answer", Width: 8},
		{Title: "From", Width: 16},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 52; extra > 0 {
		columns[2].Width += min(extra, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("204")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads responses and tallies from the source.
func (m *ResponsesModel) load() {
	m.err = nil
	if m.source == nil {
		m.responses, m.counts = nil, nil
		m.updateTableRows()
		return
	}

	responses, err := m.source.RecentResponses(m.limit)
	if err != nil {
		m.err = err
		responses = nil
	}
	counts, err := m.source.AnswerCounts()
	if err != nil {
		m.err = err
		counts = nil
	}
	m.responses, m.counts = responses, counts
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded responses.
func (m *ResponsesModel) updateTableRows() {
	rows := make([]table.Row, len(m.responses))
	for i, r := range m.responses {
		from := r.RemoteAddr
		if from == "" {
			from = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Answer,
			from,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the viewer.
func (m ResponsesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ResponsesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m ResponsesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("204")).
		MarginBottom(1)
	title := fmt.Sprintf("RESPONSES (%d)", m.total())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// total sums the tallies.
func (m ResponsesModel) total() int {
	n := 0
	for _, c := range m.counts {
		n += c.Count
	}
	return n
}

// renderSidebar renders the answer tally.
func (m ResponsesModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Answers\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	for _, c := range m.counts {
		sb.WriteString(style.Render(fmt.Sprintf("%-8s %5d", c.Answer, c.Count)))
		sb.WriteString("\n")
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ResponsesModel) renderTableContent() string {
	if len(m.responses) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No responses recorded yet.")
	}
	return m.table.View()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunResponses runs the responses viewer until the user quits.
func RunResponses(source ResponseSource, limit, width, height int) error {
	p := tea.NewProgram(
		NewResponsesModel(source, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
