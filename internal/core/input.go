package core

// Action represents a logical game input, abstracted from physical key presses.
// Frontends translate keys into actions; the simulation only sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, Up, W - flap
	ActionPauseToggle        // P - pause/resume while playing
	ActionStart              // Space, Enter on the start screen
	ActionRestart            // R after game over
	ActionQuit               // Esc after game over, Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPauseToggle:
		return "PauseToggle"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputQueue collects the discrete press events of one frame in arrival order.
// Duplicates are kept: two jump presses in one frame are two jumps.
type InputQueue struct {
	actions []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{actions: make([]Action, 0, 8)}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.actions = append(q.actions, a)
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.actions)
}

// Drain returns the pending actions and empties the queue.
// The returned slice is owned by the caller.
func (q *InputQueue) Drain() []Action {
	if len(q.actions) == 0 {
		return nil
	}
	out := make([]Action, len(q.actions))
	copy(out, q.actions)
	q.actions = q.actions[:0]
	return out
}
