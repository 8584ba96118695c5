package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// SampleRate of every generated cue.
	SampleRate = beep.SampleRate(44100)
	// DefaultVolume is the linear gain applied to cues.
	DefaultVolume = 0.35
)

// Player mixes cues onto the system speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
	closed bool
}

// NewPlayer initializes the speaker and starts an always-running mixer.
// Only one Player should exist per process.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts the cue. It never blocks on the sound finishing.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.muted {
		return
	}

	s := NewCue(c, SampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences future cues without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
