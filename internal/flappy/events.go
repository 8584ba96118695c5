package flappy

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota // A run began (from start screen or restart)
	EventFlapped                  // The bird jumped
	EventScored                   // A pipe pair was cleared
	EventLevelUp                  // The level changed
	EventPaused
	EventResumed
	EventCrashed // The run ended
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFlapped:
		return "flapped"
	case EventScored:
		return "scored"
	case EventLevelUp:
		return "level_up"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventCrashed:
		return "crashed"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by Session.Tick. Score and Level are the values right
// after the event took effect.
type Event struct {
	Kind  EventKind
	Score int
	Level int
	Tick  int // Ticks simulated in the current run
}

// StepResult is returned by Session.Tick.
type StepResult struct {
	Phase  Phase
	Score  int
	Events []Event
}

// Has reports whether an event of the given kind happened this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
