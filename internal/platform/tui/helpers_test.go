package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// constRand places every gap top at 150 + n.
type constRand int

func (c constRand) Intn(n int) int { return int(c) % n }

// newTestSession returns a session with a frozen clock and gap top 250.
func newTestSession(t *testing.T) (*flappy.Session, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return flappy.NewSession(config.DefaultSettings(), clock, constRand(100)), clock
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlCKey = tea.KeyMsg{Type: tea.KeyCtrlC}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
)
