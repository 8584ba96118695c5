package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform"
)

// Model is the Bubble Tea model running one flappy session.
// Keys are queued as actions and applied on the next tick, so the session
// only ever advances on the fixed tick.
type Model struct {
	session  *flappy.Session
	input    *core.InputQueue
	screen   *core.Screen
	hooks    *platform.Hooks
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model for the session. hooks may be nil.
func NewModel(session *flappy.Session, hooks *platform.Hooks, cfg core.RuntimeConfig) Model {
	if hooks == nil {
		hooks = &platform.Hooks{}
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: session,
		input:   core.NewInputQueue(),
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		hooks:   hooks,
		config:  cfg,
		keys:    DefaultKeyMap().ForPhase(session.Phase()),
		help:    h,
	}
}

// playfieldHeight leaves the last row for the help bar.
func playfieldHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := m.keys.Action(msg); a != core.ActionNone {
			m.input.Push(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick drains queued input into exactly one session tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Tick(m.input.Drain())
	m.hooks.Handle(m.session, res.Events)

	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	m.keys = m.keys.ForPhase(res.Phase)
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session.View())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Session returns the session driven by the model.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Run starts a Bubble Tea program for the session and blocks until it quits.
func Run(session *flappy.Session, hooks *platform.Hooks, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(session, hooks, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
