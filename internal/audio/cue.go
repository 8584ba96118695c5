package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a sound effect triggered by a game event.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueLevelUp
	CueCrash
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueLevelUp:
		return "level_up"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// NewCue builds a fresh streamer for the cue at the given volume (0..1).
func NewCue(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueFlap:
		// Short upward chirp
		s = NewEnvelope(
			NewTone(420, 720, 70*time.Millisecond, WaveTriangle, rate),
			70*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)
	case CueScore:
		s = beep.Seq(
			blip(988, 60*time.Millisecond, rate),
			blip(1319, 110*time.Millisecond, rate),
		)
	case CueLevelUp:
		s = beep.Seq(
			blip(523, 80*time.Millisecond, rate),
			blip(659, 80*time.Millisecond, rate),
			blip(784, 80*time.Millisecond, rate),
			blip(1047, 180*time.Millisecond, rate),
		)
	case CueCrash:
		s = NewEnvelope(
			NewTone(220, 55, 400*time.Millisecond, WaveSquare, rate),
			400*time.Millisecond, 2*time.Millisecond, 250*time.Millisecond, rate)
	default:
		return beep.Silence(0)
	}
	return withVolume(s, vol)
}

func blip(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, freq, d, WaveSine, rate), d, 4*time.Millisecond, d/2, rate)
}
