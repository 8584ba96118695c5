// Package platform holds the pieces shared by every frontend: reacting to
// session events with sound, logging and the run journal.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// CuePlayer plays sound cues. *audio.Player satisfies it.
type CuePlayer interface {
	Play(audio.Cue)
}

// RunStore records finished runs. *storage.Store satisfies it.
type RunStore interface {
	SaveRun(storage.Run) (string, error)
}

// Hooks reacts to the events of each tick. Every field is optional.
type Hooks struct {
	Store  RunStore
	Cues   CuePlayer
	Logger *log.Logger
	Player string
}

// Handle processes the events produced by one Session.Tick.
func (h *Hooks) Handle(s *flappy.Session, events []flappy.Event) {
	for _, e := range events {
		if cue, ok := cueFor(e.Kind); ok && h.Cues != nil {
			h.Cues.Play(cue)
		}

		switch e.Kind {
		case flappy.EventStarted:
			h.debug("run started", "player", h.Player, "high_score", s.HighScore())
		case flappy.EventLevelUp:
			h.debug("level up", "level", e.Level, "score", e.Score)
		case flappy.EventPaused, flappy.EventResumed:
			h.debug(e.Kind.String(), "score", e.Score, "tick", e.Tick)
		case flappy.EventCrashed:
			h.finish(s, e)
		case flappy.EventQuit:
			h.debug("quit", "player", h.Player)
		}
	}
}

// finish logs the crash and journals the run.
func (h *Hooks) finish(s *flappy.Session, e flappy.Event) {
	run := storage.Run{
		Player:   h.Player,
		Score:    e.Score,
		Level:    e.Level,
		Duration: s.View().Elapsed.Round(time.Millisecond),
	}

	if h.Logger != nil {
		h.Logger.Info("run over",
			"player", run.Player,
			"score", run.Score,
			"level", run.Level,
			"ticks", e.Tick,
			"duration", run.Duration,
			"high_score", s.HighScore(),
		)
	}

	if h.Store == nil {
		return
	}
	id, err := h.Store.SaveRun(run)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("could not save run", "error", err)
		}
		return
	}
	h.debug("run saved", "run_id", id)
}

func (h *Hooks) debug(msg string, keyvals ...any) {
	if h.Logger != nil {
		h.Logger.Debug(msg, keyvals...)
	}
}

func cueFor(k flappy.EventKind) (audio.Cue, bool) {
	switch k {
	case flappy.EventFlapped:
		return audio.CueFlap, true
	case flappy.EventScored:
		return audio.CueScore, true
	case flappy.EventLevelUp:
		return audio.CueLevelUp, true
	case flappy.EventCrashed:
		return audio.CueCrash, true
	}
	return 0, false
}
