package core

// EventKind identifies something noteworthy that happened during a tick.
// The platform reacts to events (sound cues, score recording) without
// reaching into game internals.
type EventKind int

const (
	EventRunStarted EventKind = iota // A new run began
	EventMoved                       // The player took a grid step
	EventNewBest                     // The player reached a new best row
	EventCrashed                     // The run ended in a collision
	EventTimeUp                      // The run ended because the clock ran out
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventMoved:
		return "moved"
	case EventNewBest:
		return "new_best"
	case EventCrashed:
		return "crashed"
	case EventTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step.
type Event struct {
	Kind    EventKind
	Score   int     // Score at the time of the event
	Elapsed float64 // Seconds since the run started
}

// IsRunEnd reports whether the event terminates a run.
func (e Event) IsRunEnd() bool {
	return e.Kind == EventCrashed || e.Kind == EventTimeUp
}
