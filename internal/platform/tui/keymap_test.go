package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func TestKeyMapActions(t *testing.T) {
	tests := []struct {
		name  string
		phase flappy.Phase
		msg   tea.KeyMsg
		want  core.Action
	}{
		{"space starts", flappy.PhaseStart, spaceKey, core.ActionStart},
		{"enter starts", flappy.PhaseStart, enterKey, core.ActionStart},
		{"no pause on start screen", flappy.PhaseStart, runeKey('p'), core.ActionNone},
		{"esc ignored on start screen", flappy.PhaseStart, escKey, core.ActionNone},
		{"q quits on start screen", flappy.PhaseStart, runeKey('q'), core.ActionQuit},

		{"space flaps", flappy.PhasePlaying, spaceKey, core.ActionJump},
		{"w flaps", flappy.PhasePlaying, runeKey('w'), core.ActionJump},
		{"p pauses", flappy.PhasePlaying, runeKey('p'), core.ActionPauseToggle},
		{"no restart while playing", flappy.PhasePlaying, runeKey('r'), core.ActionNone},
		{"esc ignored while playing", flappy.PhasePlaying, escKey, core.ActionNone},
		{"ctrl+c quits while playing", flappy.PhasePlaying, ctrlCKey, core.ActionQuit},

		{"r restarts", flappy.PhaseGameOver, runeKey('r'), core.ActionRestart},
		{"esc quits", flappy.PhaseGameOver, escKey, core.ActionQuit},
		{"no flap after game over", flappy.PhaseGameOver, spaceKey, core.ActionNone},
		{"unbound key", flappy.PhaseGameOver, runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := DefaultKeyMap().ForPhase(tt.phase)
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelpFollowsPhase(t *testing.T) {
	km := DefaultKeyMap().ForPhase(flappy.PhasePlaying)

	enabled := map[string]bool{}
	for _, b := range km.ShortHelp() {
		if b.Enabled() {
			enabled[b.Help().Desc] = true
		}
	}

	for _, want := range []string{"flap", "pause", "quit"} {
		if !enabled[want] {
			t.Errorf("%q should be listed while playing", want)
		}
	}
	for _, hidden := range []string{"start", "restart"} {
		if enabled[hidden] {
			t.Errorf("%q should be hidden while playing", hidden)
		}
	}
}
