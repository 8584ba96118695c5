package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// 40x30 cells over a 400x600 world: 10 units per column, 20 per row.
func newTestScreen() *core.Screen {
	return core.NewScreen(40, 30)
}

func TestDrawStartScreen(t *testing.T) {
	s, _ := newTestSession(t)
	dst := newTestScreen()

	Draw(dst, s.View())

	for _, want := range []string{"FLAPPY BIRD", "Press SPACE to Start", "High Score: 0"} {
		if !dst.Contains(want) {
			t.Errorf("start screen should show %q:\n%s", want, dst.String())
		}
	}
	if strings.ContainsRune(dst.String(), PipeChar) {
		t.Error("no pipes on the start screen")
	}
}

func TestDrawPlaying(t *testing.T) {
	s, _ := newTestSession(t)
	s.Tick([]core.Action{core.ActionStart})
	dst := newTestScreen()

	Draw(dst, s.View())

	for _, want := range []string{"Score: 0", "Level: 1", "SLOW MOTION START!"} {
		if !dst.Contains(want) {
			t.Errorf("playing screen should show %q:\n%s", want, dst.String())
		}
	}

	// Bird at (60, 300.25) -> column 6, row 15
	if got := dst.Get(6, 15); got != '▶' {
		t.Errorf("beak = %q, expected level beak", got)
	}
	if got := dst.Get(5, 15); got != BirdBody {
		t.Errorf("body = %q, expected %q", got, BirdBody)
	}

	// Pipe enters at x 398.2 -> column 39; gap spans rows 2..11
	tests := []struct {
		y    int
		want rune
	}{
		{0, PipeChar},
		{1, PipeCapTop},
		{5, ' '},
		{11, ' '},
		{12, PipeCapBottom},
		{29, PipeChar},
	}
	for _, tt := range tests {
		if got := dst.Get(39, tt.y); got != tt.want {
			t.Errorf("pipe column row %d = %q, expected %q", tt.y, got, tt.want)
		}
	}
	if dst.GetCell(39, 20).Color != core.ColorGreen {
		t.Error("pipe body should be green")
	}
}

func TestDrawPaused(t *testing.T) {
	s, _ := newTestSession(t)
	s.Tick([]core.Action{core.ActionStart})
	s.Tick([]core.Action{core.ActionPauseToggle})
	dst := newTestScreen()

	Draw(dst, s.View())

	if !dst.Contains("PAUSED") || !dst.Contains("Press P to Resume") {
		t.Errorf("pause overlay missing:\n%s", dst.String())
	}
	if dst.GetCell(39, 20).Color != core.ColorGray {
		t.Error("the world should be dimmed behind the pause overlay")
	}
	if dst.Contains("SLOW MOTION") {
		t.Error("slow motion banner should not show while paused")
	}
}

func TestDrawLevelPopup(t *testing.T) {
	v := flappy.View{
		Phase:  flappy.PhasePlaying,
		Score:  5,
		Level:  2,
		Popup:  flappy.PopupView{Visible: true, Level: 2},
		WorldW: 400,
		WorldH: 600,
	}
	dst := newTestScreen()

	Draw(dst, v)
	if !dst.Contains("LEVEL 2!") {
		t.Errorf("popup missing:\n%s", dst.String())
	}

	v.Popup.Visible = false
	Draw(dst, v)
	if dst.Contains("LEVEL 2!") {
		t.Error("hidden popup should not be drawn")
	}
}

func TestDrawGameOver(t *testing.T) {
	s, _ := newTestSession(t)
	s.Tick([]core.Action{core.ActionStart})
	for i := 0; i < 200 && s.Phase() == flappy.PhasePlaying; i++ {
		s.Tick(nil)
	}
	dst := newTestScreen()

	Draw(dst, s.View())

	for _, want := range []string{"GAME OVER", "Score: 0", "Best: 0", "Level: 1", "Press R to Restart", "Press ESC to Quit"} {
		if !dst.Contains(want) {
			t.Errorf("game over screen should show %q:\n%s", want, dst.String())
		}
	}
	out := dst.String()
	if strings.ContainsRune(out, PipeChar) || strings.ContainsRune(out, BirdBody) {
		t.Error("pipes and bird are not drawn on the game over screen")
	}
}

func TestDrawTinyScreen(t *testing.T) {
	s, _ := newTestSession(t)
	s.Tick([]core.Action{core.ActionStart})

	// Must not panic
	Draw(core.NewScreen(0, 0), s.View())
	Draw(core.NewScreen(3, 2), s.View())
}

func TestBeak(t *testing.T) {
	tests := []struct {
		tilt float64
		want rune
	}{
		{0, '▶'},
		{8, '▶'},
		{-8, '▶'},
		{20, '╱'},
		{-25, '╲'},
	}
	for _, tt := range tests {
		if got := beak(tt.tilt); got != tt.want {
			t.Errorf("beak(%v) = %q, expected %q", tt.tilt, got, tt.want)
		}
	}
}
