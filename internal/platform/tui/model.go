// Package tui runs sessions in the terminal: the Bubble Tea loop, mouse and
// key mapping, colored rendering, the SSH server and the responses viewer.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/host"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model hosting one mounted session.
type Model struct {
	handle   *host.Handle
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
	err      error
}

// NewModel creates a model for a mounted session. cfg is the terminal size.
func NewModel(handle *host.Handle, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		handle: handle,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			return m.check(m.handle.Session.Pointer(ev))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.handle.Session.Closed() {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m, cmd = m.check(m.handle.Session.Tick(tickInterval(m.config.TickRate)))
		if cmd != nil {
			return m, cmd
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// check quits with err if a hand-off failed.
func (m Model) check(err error) (Model, tea.Cmd) {
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionConfirm:
		return m.check(m.handle.Session.Key(core.ActionConfirm))
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize resizes the buffer. Scenes entered later use the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	m.handle.Session.Resize(msg.Width, max(1, msg.Height-helpHeight))
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.handle.Session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".valentine", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := "session"
	if id, ok := m.handle.Session.Current(); ok {
		name = id.String()
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the active scene and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.handle.Session.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run mounts the local container, plays until quit, then unmounts.
func Run(h *host.Host, cfg core.RuntimeConfig) error {
	handle, err := h.Mount(host.Container{
		Name:   "local",
		Width:  cfg.ScreenW,
		Height: max(1, cfg.ScreenH-helpHeight),
	})
	if err != nil {
		return err
	}
	defer h.Unmount(handle)

	p := tea.NewProgram(
		NewModel(handle, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
