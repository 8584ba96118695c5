package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// KeyMap translates key presses to game actions. Bindings are enabled per
// phase, so the help bar only lists what currently does something.
type KeyMap struct {
	Start   key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Exit    key.Binding // Esc, game over only
	Quit    key.Binding
}

// DefaultKeyMap returns the bindings for the start screen.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w", "k"),
			key.WithHelp("space", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return km.ForPhase(flappy.PhaseStart)
}

// ForPhase returns a copy of the key map with only the phase's bindings enabled.
func (km KeyMap) ForPhase(p flappy.Phase) KeyMap {
	km.Start.SetEnabled(p == flappy.PhaseStart)
	km.Jump.SetEnabled(p == flappy.PhasePlaying)
	km.Pause.SetEnabled(p == flappy.PhasePlaying)
	km.Restart.SetEnabled(p == flappy.PhaseGameOver)
	km.Exit.SetEnabled(p == flappy.PhaseGameOver)
	km.Quit.SetEnabled(true)
	return km
}

// Action maps a key message to an action. Returns core.ActionNone for
// unbound or disabled keys.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit), key.Matches(msg, km.Exit):
		return core.ActionQuit
	case key.Matches(msg, km.Start):
		return core.ActionStart
	case key.Matches(msg, km.Jump):
		return core.ActionJump
	case key.Matches(msg, km.Pause):
		return core.ActionPauseToggle
	case key.Matches(msg, km.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Start, km.Jump, km.Pause, km.Restart, km.Exit, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
