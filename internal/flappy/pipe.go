package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SlowMotionFactor scales pipe speed while the slow-motion window is open.
const SlowMotionFactor = 0.6

// ScorePerSpeedStep is how many points it takes to add one unit of pipe speed.
const ScorePerSpeedStep = 10

// Rand is the random source used for gap placement.
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Intn(n int) int
}

// PipePair is the single scrolling obstacle: a top and a bottom pipe with a
// gap between them. It is recycled in place when it leaves the screen.
type PipePair struct {
	X      float64 // Left edge
	GapTop int     // The gap spans [GapTop-gap, GapTop]
	Passed bool    // Set once the bird has scored this pair
	Speed  float64 // Current scroll speed per tick

	cfg         config.PipeSettings
	worldWidth  float64
	worldHeight float64
}

// NewPipePair creates a pair at the right edge of the world with a random gap.
func NewPipePair(s config.Settings, rng Rand) PipePair {
	p := PipePair{
		X:           float64(s.Screen.Width),
		Speed:       s.Pipes.SpeedStart,
		cfg:         s.Pipes,
		worldWidth:  float64(s.Screen.Width),
		worldHeight: float64(s.Screen.Height),
	}
	p.GapTop = p.randomGapTop(rng)
	return p
}

// UpdateSpeed recomputes the scroll speed from the score and slow-motion state.
func (p *PipePair) UpdateSpeed(score int, slowMotion bool) {
	p.Speed = PipeSpeed(score, slowMotion, p.cfg.SpeedStart, p.cfg.SpeedMax)
}

// Advance scrolls the pair by its speed and recycles it once it has left
// the world on the left.
func (p *PipePair) Advance(rng Rand) {
	p.X -= p.Speed

	if p.X < -p.cfg.Width {
		p.X = p.worldWidth
		p.GapTop = p.randomGapTop(rng)
		p.Passed = false
	}
}

// Rects returns the collision geometry of the pair.
func (p PipePair) Rects() (top, bottom core.Box) {
	return PipeRects(p.X, float64(p.GapTop), p.cfg.Width, p.cfg.Gap, p.worldHeight)
}

// Width returns the pipe width in world units.
func (p PipePair) Width() float64 {
	return p.cfg.Width
}

// randomGapTop draws a gap position uniformly from [GapTopMin, GapTopMax).
func (p PipePair) randomGapTop(rng Rand) int {
	return p.cfg.GapTopMin + rng.Intn(p.cfg.GapTopMax-p.cfg.GapTopMin)
}

// PipeSpeed is the piecewise speed function: one extra unit of speed per
// ScorePerSpeedStep points, capped at maxSpeed, scaled down in slow motion.
func PipeSpeed(score int, slowMotion bool, startSpeed, maxSpeed float64) float64 {
	progression := float64(score / ScorePerSpeedStep)
	base := min(startSpeed+progression, maxSpeed)
	if slowMotion {
		return base * SlowMotionFactor
	}
	return base
}

// PipeRects derives the two obstacle rectangles from the pair's position.
// The top pipe runs from the top of the world down to the start of the gap;
// when the gap reaches past the top edge the top pipe is empty.
func PipeRects(x, gapTop, pipeWidth, gapHeight, worldHeight float64) (top, bottom core.Box) {
	top = core.NewBox(x, 0, pipeWidth, max(gapTop-gapHeight, 0))
	bottom = core.NewBox(x, gapTop, pipeWidth, worldHeight-gapTop)
	return top, bottom
}
