// Package window is the desktop frontend: an ebiten game that renders the
// session at its native world size.
package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform"
)

// Palette
var (
	skyBlue      = color.RGBA{135, 206, 235, 255}
	pipeGreen    = color.RGBA{0, 200, 0, 255}
	pipeBorder   = color.RGBA{0, 100, 0, 255}
	birdYellow   = color.RGBA{255, 215, 0, 255}
	birdBeak     = color.RGBA{255, 120, 0, 255}
	overlayDim   = color.RGBA{0, 0, 0, 120}
	gameOverDark = color.RGBA{0, 0, 0, 160}
)

const pipeBorderWidth = 3

// debugGlyph is the cell size of ebitenutil's debug font.
const (
	glyphW = 6
	glyphH = 16
)

// Game implements ebiten.Game for one session.
type Game struct {
	session *flappy.Session
	hooks   *platform.Hooks
	input   *core.InputQueue
	bird    *ebiten.Image
	worldW  int
	worldH  int
}

// NewGame creates a desktop game for the session. hooks may be nil.
func NewGame(session *flappy.Session, hooks *platform.Hooks) *Game {
	if hooks == nil {
		hooks = &platform.Hooks{}
	}
	s := session.Settings()
	return &Game{
		session: session,
		hooks:   hooks,
		input:   core.NewInputQueue(),
		bird:    newBirdImage(int(s.Bird.Width), int(s.Bird.Height)),
		worldW:  s.Screen.Width,
		worldH:  s.Screen.Height,
	}
}

// newBirdImage draws the bird sprite: a yellow body with an eye and a beak.
func newBirdImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledRect(img, 0, 0, fw*0.8, fh, birdYellow, false)
	vector.DrawFilledRect(img, fw*0.8, fh*0.35, fw*0.2, fh*0.3, birdBeak, false)
	vector.DrawFilledCircle(img, fw*0.6, fh*0.3, fh*0.1, color.Black, true)
	return img
}

// Update polls keys into the queue and runs exactly one session tick.
func (g *Game) Update() error {
	for _, a := range pressedActions(g.session.Phase()) {
		g.input.Push(a)
	}

	res := g.session.Tick(g.input.Drain())
	g.hooks.Handle(g.session, res.Events)

	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// pressedActions maps keys pressed this frame to actions for the phase.
func pressedActions(p flappy.Phase) []core.Action {
	var out []core.Action
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		out = append(out, core.ActionQuit)
	}

	switch p {
	case flappy.PhaseStart:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			out = append(out, core.ActionStart)
		}
	case flappy.PhasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			out = append(out, core.ActionJump)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			out = append(out, core.ActionPauseToggle)
		}
	case flappy.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			out = append(out, core.ActionRestart)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			out = append(out, core.ActionQuit)
		}
	}
	return out
}

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.session.View()
	screen.Fill(skyBlue)

	switch v.Phase {
	case flappy.PhaseStart:
		g.drawBird(screen, v.Bird)
		g.centered(screen, v.WorldH/3, "FLAPPY BIRD")
		g.centered(screen, v.WorldH/2, "Press SPACE to Start")
		g.centered(screen, v.WorldH/2+30, fmt.Sprintf("High Score: %d", v.HighScore))

	case flappy.PhasePlaying:
		drawPipes(screen, v.Pipe)
		g.drawBird(screen, v.Bird)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", v.Score), 10, 10)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", v.Level), 10, 30)

		if v.SlowMotion {
			g.centered(screen, 60, "SLOW MOTION START!")
		}
		if v.Popup.Visible {
			g.centered(screen, v.WorldH/3, fmt.Sprintf("LEVEL %d!", v.Popup.Level))
		}
		if v.Paused {
			vector.DrawFilledRect(screen, 0, 0, float32(v.WorldW), float32(v.WorldH), overlayDim, false)
			g.centered(screen, v.WorldH/2-20, "PAUSED")
			g.centered(screen, v.WorldH/2+10, "Press P to Resume")
		}

	case flappy.PhaseGameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(v.WorldW), float32(v.WorldH), gameOverDark, false)
		y := v.WorldH/2 - 80
		g.centered(screen, y, "GAME OVER")
		g.centered(screen, y+40, fmt.Sprintf("Score: %d", v.Score))
		g.centered(screen, y+60, fmt.Sprintf("Best: %d", v.HighScore))
		g.centered(screen, y+80, fmt.Sprintf("Level: %d", v.Level))
		g.centered(screen, y+120, "Press R to Restart")
		g.centered(screen, y+140, "Press ESC to Quit")
	}
}

func drawPipes(screen *ebiten.Image, p flappy.PipeView) {
	for _, r := range []core.Box{p.Top, p.Bottom} {
		if r.Empty() {
			continue
		}
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.DrawFilledRect(screen, x, y, w, h, pipeGreen, false)
		vector.StrokeRect(screen, x, y, w, h, pipeBorderWidth, pipeBorder, false)
	}
}

// drawBird draws the sprite centered on the bird, rotated by its tilt.
// Screen y grows downward, so nose-up is a negative rotation.
func (g *Game) drawBird(screen *ebiten.Image, b flappy.BirdView) {
	w, h := g.bird.Bounds().Dx(), g.bird.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(-b.Tilt * math.Pi / 180)
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(g.bird, op)
}

func (g *Game) centered(screen *ebiten.Image, y float64, text string) {
	x := (g.worldW - len(text)*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, text, x, int(y)-glyphH/2)
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.worldW, g.worldH
}

// Run opens a window and blocks until the player quits or closes it.
func Run(session *flappy.Session, hooks *platform.Hooks) error {
	s := session.Settings()
	ebiten.SetWindowSize(s.Screen.Width, s.Screen.Height)
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetTPS(s.Screen.FPS)

	if err := ebiten.RunGame(NewGame(session, hooks)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
