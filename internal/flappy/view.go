package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// View is a read-only snapshot of a session for renderers.
type View struct {
	Phase      Phase
	Paused     bool
	SlowMotion bool

	Score     int
	Level     int
	HighScore int

	Bird  BirdView
	Pipe  PipeView
	Popup PopupView

	WorldW  float64
	WorldH  float64
	Elapsed time.Duration // Wall clock since the run started, zero before the first run
	Ticks   int
}

// BirdView is the bird's pose.
type BirdView struct {
	X, Y float64
	Tilt float64 // Degrees, positive = nose up
	Box  core.Box
}

// PipeView is the pipe pair's geometry.
type PipeView struct {
	X      float64
	GapTop int
	Top    core.Box
	Bottom core.Box
}

// PopupView is the level-up notice.
type PopupView struct {
	Visible bool
	Level   int
}

// View returns a snapshot of the session for rendering.
func (s *Session) View() View {
	now := s.clock.Now()
	top, bottom := s.pipe.Rects()

	v := View{
		Phase:      s.phase,
		Paused:     s.paused,
		SlowMotion: s.slowMotion,
		Score:      s.score,
		Level:      s.level,
		HighScore:  s.highScore,
		Bird: BirdView{
			X:    s.bird.X,
			Y:    s.bird.Y,
			Tilt: s.bird.Tilt,
			Box:  s.bird.Box(),
		},
		Pipe: PipeView{
			X:      s.pipe.X,
			GapTop: s.pipe.GapTop,
			Top:    top,
			Bottom: bottom,
		},
		WorldW: float64(s.settings.Screen.Width),
		WorldH: float64(s.settings.Screen.Height),
		Ticks:  s.ticks,
	}

	if !s.startedAt.IsZero() {
		v.Elapsed = now.Sub(s.startedAt)
	}

	if s.phase == PhasePlaying && s.popup.level > 0 && now.Sub(s.popup.since) <= LevelPopupDuration {
		v.Popup = PopupView{Visible: true, Level: s.popup.level}
	}

	return v
}
