package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	BirdBody      = '●'
)

// Tilt above which the beak is drawn pointing up or down.
const beakTilt = 8.0

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, v flappy.View) viewport {
	return viewport{
		sx: float64(dst.Width()) / v.WorldW,
		sy: float64(dst.Height()) / v.WorldH,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (vp viewport) col(x float64) int { return int(math.Floor(x * vp.sx)) }
func (vp viewport) row(y float64) int { return int(math.Floor(y * vp.sy)) }

// Draw renders a session view into dst.
func Draw(dst *core.Screen, v flappy.View) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || v.WorldW <= 0 || v.WorldH <= 0 {
		return
	}

	switch v.Phase {
	case flappy.PhaseStart:
		drawStart(dst, v)
	case flappy.PhasePlaying:
		drawPlaying(dst, v)
	case flappy.PhaseGameOver:
		drawGameOver(dst, v)
	}
}

func drawStart(dst *core.Screen, v flappy.View) {
	drawBird(dst, newViewport(dst, v), v.Bird)

	h := dst.Height()
	dst.DrawTextCentered(h/3, "FLAPPY BIRD", core.ColorYellow)
	dst.DrawTextCentered(h/2, "Press SPACE to Start", core.ColorWhite)
	dst.DrawTextCentered(h/2+2, fmt.Sprintf("High Score: %d", v.HighScore), core.ColorCyan)
}

func drawPlaying(dst *core.Screen, v flappy.View) {
	vp := newViewport(dst, v)
	drawPipes(dst, vp, v.Pipe)
	drawBird(dst, vp, v.Bird)

	h := dst.Height()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", v.Score), core.ColorWhite)
	level := fmt.Sprintf("Level: %d", v.Level)
	dst.DrawText(dst.Width()-len(level)-1, 0, level, core.ColorWhite)

	if v.SlowMotion {
		dst.DrawTextCentered(2, "SLOW MOTION START!", core.ColorCyan)
	}
	if v.Popup.Visible {
		dst.DrawTextCentered(h/3, fmt.Sprintf("LEVEL %d!", v.Popup.Level), core.ColorYellow)
	}

	if v.Paused {
		dst.Tint(core.ColorGray)
		dst.DrawTextCentered(h/2-1, "PAUSED", core.ColorWhite)
		dst.DrawTextCentered(h/2+1, "Press P to Resume", core.ColorWhite)
	}
}

// drawGameOver shows the results only; pipes and bird are not drawn.
func drawGameOver(dst *core.Screen, v flappy.View) {
	h := dst.Height()
	y := h/2 - 4
	dst.DrawTextCentered(y, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Score: %d", v.Score), core.ColorWhite)
	dst.DrawTextCentered(y+3, fmt.Sprintf("Best: %d", v.HighScore), core.ColorYellow)
	dst.DrawTextCentered(y+4, fmt.Sprintf("Level: %d", v.Level), core.ColorWhite)
	dst.DrawTextCentered(y+6, "Press R to Restart", core.ColorCyan)
	dst.DrawTextCentered(y+7, "Press ESC to Quit", core.ColorCyan)
}

func drawPipes(dst *core.Screen, vp viewport, p flappy.PipeView) {
	x0 := vp.col(p.Top.X)
	x1 := int(math.Ceil(p.Top.Right() * vp.sx))
	if x1 <= x0 {
		x1 = x0 + 1
	}

	topEnd := vp.row(p.Top.Bottom())           // First row below the top pipe
	bottomStart := vp.row(p.Bottom.Y)          // First row of the bottom pipe
	bottomEnd := vp.row(p.Bottom.Bottom() - 1) // Last row of the bottom pipe

	for x := x0; x < x1; x++ {
		if !p.Top.Empty() {
			for y := 0; y < topEnd; y++ {
				dst.Set(x, y, PipeChar, core.ColorGreen)
			}
			dst.Set(x, topEnd-1, PipeCapTop, core.ColorDarkGreen)
		}
		if !p.Bottom.Empty() {
			for y := bottomStart; y <= bottomEnd; y++ {
				dst.Set(x, y, PipeChar, core.ColorGreen)
			}
			dst.Set(x, bottomStart, PipeCapBottom, core.ColorDarkGreen)
		}
	}
}

func drawBird(dst *core.Screen, vp viewport, b flappy.BirdView) {
	x, y := vp.col(b.X), vp.row(b.Y)
	dst.Set(x-1, y, BirdBody, core.ColorYellow)
	dst.Set(x, y, beak(b.Tilt), core.ColorYellow)
}

// beak picks the head glyph from the bird's tilt.
func beak(tilt float64) rune {
	switch {
	case tilt > beakTilt:
		return '╱'
	case tilt < -beakTilt:
		return '╲'
	default:
		return '▶'
	}
}
