package platform

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeCues struct{ played []audio.Cue }

func (f *fakeCues) Play(c audio.Cue) { f.played = append(f.played, c) }

type fakeStore struct {
	runs []storage.Run
	err  error
}

func (f *fakeStore) SaveRun(r storage.Run) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.runs = append(f.runs, r)
	return "run-id", nil
}

// playUntilCrash starts a run and lets the bird fall, feeding every tick to h.
func playUntilCrash(t *testing.T, h *Hooks) *flappy.Session {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s := flappy.NewSession(config.DefaultSettings(), clock, rand.New(rand.NewSource(1)))

	res := s.Tick([]core.Action{core.ActionStart, core.ActionJump})
	h.Handle(s, res.Events)
	for i := 0; i < 500 && s.Phase() == flappy.PhasePlaying; i++ {
		clock.Advance(time.Second / 60)
		res = s.Tick(nil)
		h.Handle(s, res.Events)
	}
	if s.Phase() != flappy.PhaseGameOver {
		t.Fatal("run did not end")
	}
	return s
}

func TestHooksJournalCrashOnce(t *testing.T) {
	store := &fakeStore{}
	h := &Hooks{Store: store, Player: "alice"}

	s := playUntilCrash(t, h)

	// Ticks after game over produce no events
	h.Handle(s, s.Tick(nil).Events)

	if len(store.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(store.runs))
	}
	r := store.runs[0]
	if r.Player != "alice" || r.Score != 0 || r.Level != 1 {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.Duration <= 0 {
		t.Errorf("duration = %s, expected positive", r.Duration)
	}
}

func TestHooksPlayCues(t *testing.T) {
	cues := &fakeCues{}
	h := &Hooks{Cues: cues}

	playUntilCrash(t, h)

	if len(cues.played) != 2 || cues.played[0] != audio.CueFlap || cues.played[1] != audio.CueCrash {
		t.Errorf("played %v, expected [flap crash]", cues.played)
	}
}

func TestHooksLogStoreFailure(t *testing.T) {
	var buf bytes.Buffer
	h := &Hooks{
		Store:  &fakeStore{err: errors.New("disk full")},
		Logger: log.New(&buf),
	}

	playUntilCrash(t, h)

	out := buf.String()
	if !strings.Contains(out, "run over") {
		t.Errorf("log should report the finished run, got %q", out)
	}
	if !strings.Contains(out, "disk full") {
		t.Errorf("log should report the save failure, got %q", out)
	}
}

func TestHooksWithoutCollaborators(t *testing.T) {
	// Zero-value hooks must be safe
	playUntilCrash(t, &Hooks{})
}
