package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fixedRand always returns the same value (mod n).
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

// seqRand cycles through a fixed list of values (mod n).
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

var testEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestSession returns a session with default settings, a frozen clock and
// a gap top of 250 for every pipe.
func newTestSession(t *testing.T) (*Session, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testEpoch)
	return NewSession(config.DefaultSettings(), clock, fixedRand(100)), clock
}

func actions(a ...core.Action) []core.Action { return a }

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
