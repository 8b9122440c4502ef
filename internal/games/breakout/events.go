package breakout

// EventKind identifies what changed during a frame.
type EventKind int

const (
	EventScore   EventKind = iota // Score changed; Value is the new score
	EventLives                    // Lives changed; Value is the remaining lives
	EventReskin                   // Ball sprite re-rolled; Value is the sheet index
	EventOutcome                  // Session ended; Outcome is won or lost
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventLives:
		return "lives"
	case EventReskin:
		return "reskin"
	case EventOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Event is emitted to the listener as the simulation changes state.
// Reskin events are cosmetic; nothing in the simulation depends on them.
type Event struct {
	Kind    EventKind
	Tick    int
	Value   int
	Outcome Outcome
}

// Listener receives events synchronously, inside the frame that produced them.
type Listener func(Event)
