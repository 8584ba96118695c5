// Package config provides the YAML-backed game settings. Settings are loaded
// once at startup and treated as immutable afterwards.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSettings is returned (wrapped) when loaded settings cannot run a game.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings contains all tunables of the game world.
type Settings struct {
	Screen ScreenSettings `yaml:"screen"`
	Bird   BirdSettings   `yaml:"bird"`
	Pipes  PipeSettings   `yaml:"pipes"`
	Timing TimingSettings `yaml:"timing"`
}

// ScreenSettings defines the world size and the frame rate.
type ScreenSettings struct {
	Width  int `yaml:"width"`  // World width in world units
	Height int `yaml:"height"` // World height in world units
	FPS    int `yaml:"fps"`    // Target simulation ticks per second
}

// BirdSettings defines bird placement and physics. Physics is per tick.
type BirdSettings struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`  // Hitbox width
	Height      float64 `yaml:"height"` // Hitbox height
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
}

// PipeSettings defines pipe geometry, gap placement and scroll speed.
type PipeSettings struct {
	Gap        float64 `yaml:"gap"`
	Width      float64 `yaml:"width"`
	SpeedStart float64 `yaml:"speed_start"`
	SpeedMax   float64 `yaml:"speed_max"`
	GapTopMin  int     `yaml:"gap_top_min"` // Inclusive
	GapTopMax  int     `yaml:"gap_top_max"` // Exclusive
}

// TimingSettings defines wall-clock windows.
type TimingSettings struct {
	SlowMotion time.Duration `yaml:"slow_motion"`
}

// Validate checks that the settings describe a playable world.
// All problems are reported together.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.Screen.Width > 0, "screen.width must be positive, got %d", s.Screen.Width)
	check(s.Screen.Height > 0, "screen.height must be positive, got %d", s.Screen.Height)
	check(s.Screen.FPS > 0, "screen.fps must be positive, got %d", s.Screen.FPS)

	check(s.Bird.Width > 0 && s.Bird.Height > 0, "bird hitbox must be positive, got %gx%g", s.Bird.Width, s.Bird.Height)
	check(s.Bird.Gravity > 0, "bird.gravity must be positive, got %g", s.Bird.Gravity)
	check(s.Bird.JumpImpulse < 0, "bird.jump_impulse must be negative (upward), got %g", s.Bird.JumpImpulse)
	check(s.Bird.Y > 0 && s.Bird.Y < float64(s.Screen.Height), "bird.y must start inside the world, got %g", s.Bird.Y)

	check(s.Pipes.Gap > 0, "pipes.gap must be positive, got %g", s.Pipes.Gap)
	check(s.Pipes.Width > 0, "pipes.width must be positive, got %g", s.Pipes.Width)
	check(s.Pipes.SpeedStart > 0, "pipes.speed_start must be positive, got %g", s.Pipes.SpeedStart)
	check(s.Pipes.SpeedStart <= s.Pipes.SpeedMax, "pipes.speed_start (%g) exceeds pipes.speed_max (%g)", s.Pipes.SpeedStart, s.Pipes.SpeedMax)
	check(s.Pipes.GapTopMin >= 0, "pipes.gap_top_min must not be negative, got %d", s.Pipes.GapTopMin)
	check(s.Pipes.GapTopMin < s.Pipes.GapTopMax, "pipes.gap_top_min (%d) must be below pipes.gap_top_max (%d)", s.Pipes.GapTopMin, s.Pipes.GapTopMax)
	check(s.Pipes.GapTopMax <= s.Screen.Height, "pipes.gap_top_max (%d) exceeds screen.height (%d)", s.Pipes.GapTopMax, s.Screen.Height)

	check(s.Timing.SlowMotion >= 0, "timing.slow_motion must not be negative, got %s", s.Timing.SlowMotion)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

// TickInterval returns the duration of one simulation tick.
func (s Settings) TickInterval() time.Duration {
	if s.Screen.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.Screen.FPS)
}
