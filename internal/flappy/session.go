package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// LevelPopupDuration is how long the level-up notice stays visible.
const LevelPopupDuration = 2 * time.Second

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type levelPopup struct {
	level int
	since time.Time
}

// Session owns one player's game: the entities, score, level, high score and
// phase. Frontends call Tick once per frame with the actions drained from their
// input queue, then render View.
type Session struct {
	settings config.Settings
	clock    core.Clock
	rng      Rand

	phase  Phase
	paused bool // Only meaningful while playing
	quit   bool

	bird Bird
	pipe PipePair

	score      int
	level      int
	highScore  int // Process lifetime only
	startedAt  time.Time
	slowMotion bool // Computed once per tick
	popup      levelPopup
	ticks      int
}

// NewSession creates a session on the start screen.
func NewSession(s config.Settings, clock core.Clock, rng Rand) *Session {
	return &Session{
		settings: s,
		clock:    clock,
		rng:      rng,
		phase:    PhaseStart,
		level:    1,
		bird:     NewBird(s.Bird),
		pipe:     NewPipePair(s, rng),
	}
}

// Tick applies the frame's actions in order, then simulates one tick if the
// session is playing and not paused.
func (s *Session) Tick(actions []core.Action) StepResult {
	if s.quit {
		return s.result(nil)
	}

	var events []Event
	for _, a := range actions {
		if ev, ok := s.apply(a); ok {
			events = append(events, ev)
		}
		if s.quit {
			return s.result(events)
		}
	}

	if s.phase == PhasePlaying && !s.paused {
		events = s.step(events)
	} else {
		s.slowMotion = false
	}

	return s.result(events)
}

// apply handles one input action. Actions that do not fit the current phase
// are ignored.
func (s *Session) apply(a core.Action) (Event, bool) {
	switch a {
	case core.ActionQuit:
		s.quit = true
		return s.event(EventQuit), true

	case core.ActionStart:
		if s.phase == PhaseStart {
			s.begin()
			return s.event(EventStarted), true
		}

	case core.ActionRestart:
		if s.phase == PhaseGameOver {
			s.begin()
			return s.event(EventStarted), true
		}

	case core.ActionPauseToggle:
		if s.phase == PhasePlaying {
			s.paused = !s.paused
			if s.paused {
				return s.event(EventPaused), true
			}
			return s.event(EventResumed), true
		}

	case core.ActionJump:
		if s.phase == PhasePlaying && !s.paused {
			s.bird.Jump()
			return s.event(EventFlapped), true
		}
	}
	return Event{}, false
}

// begin enters the playing phase with fresh entities.
func (s *Session) begin() {
	s.bird = NewBird(s.settings.Bird)
	s.pipe = NewPipePair(s.settings, s.rng)
	s.score = 0
	s.level = 1
	s.ticks = 0
	s.popup = levelPopup{}
	s.startedAt = s.clock.Now()
	s.slowMotion = false
	s.paused = false
	s.phase = PhasePlaying
}

// step runs one simulation tick: physics, speed, scroll, scoring, level and collision.
func (s *Session) step(events []Event) []Event {
	now := s.clock.Now()
	s.slowMotion = now.Sub(s.startedAt) < s.settings.Timing.SlowMotion
	s.ticks++

	s.bird.Update()
	s.pipe.UpdateSpeed(s.score, s.slowMotion)
	s.pipe.Advance(s.rng)

	if HasCleared(s.pipe, s.bird) {
		s.score++
		s.pipe.Passed = true
		events = append(events, s.event(EventScored))
	}

	if level := Level(s.score); level != s.level {
		s.level = level
		s.popup = levelPopup{level: level, since: now}
		events = append(events, s.event(EventLevelUp))
	}

	if Collides(s.bird, s.pipe, float64(s.settings.Screen.Height)) {
		s.phase = PhaseGameOver
		s.paused = false
		s.slowMotion = false
		s.highScore = max(s.highScore, s.score)
		events = append(events, s.event(EventCrashed))
	}

	return events
}

func (s *Session) event(kind EventKind) Event {
	return Event{Kind: kind, Score: s.score, Level: s.level, Tick: s.ticks}
}

func (s *Session) result(events []Event) StepResult {
	return StepResult{Phase: s.phase, Score: s.score, Events: events}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether a playing session is paused.
func (s *Session) Paused() bool { return s.paused }

// Done reports whether the player asked to quit.
func (s *Session) Done() bool { return s.quit }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// Level returns the current run's level.
func (s *Session) Level() int { return s.level }

// HighScore returns the best score of this process.
func (s *Session) HighScore() int { return s.highScore }

// SlowMotion reports the slow-motion flag computed on the last tick.
func (s *Session) SlowMotion() bool { return s.slowMotion }

// StartedAt returns when the current run began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Ticks returns the number of ticks simulated in the current run.
func (s *Session) Ticks() int { return s.ticks }

// Settings returns the settings the session was built with.
func (s *Session) Settings() config.Settings { return s.settings }
