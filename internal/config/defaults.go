package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings.
// Kept in sync with defaults/flappy.yaml and used when the embed cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		Screen: ScreenSettings{
			Width:  400,
			Height: 600,
			FPS:    60,
		},
		Bird: BirdSettings{
			X:           60,
			Y:           300,
			Width:       60,
			Height:      45,
			Gravity:     0.25,
			JumpImpulse: -5.5,
		},
		Pipes: PipeSettings{
			Gap:        200,
			Width:      80,
			SpeedStart: 3,
			SpeedMax:   6,
			GapTopMin:  150,
			GapTopMax:  400,
		},
		Timing: TimingSettings{
			SlowMotion: 3 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
