package quiz

// State is the phase of a quiz session.
type State int

const (
	StateIdle      State = iota // no quiz started
	StateAnswering              // choices shown, waiting for an answer
	StateRevealed               // answer submitted, feedback shown
	StateCompleted              // last question advanced past
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnswering:
		return "answering"
	case StateRevealed:
		return "revealed"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
