package resolver

// State is a step of a single resolution.
type State int

const (
	Idle State = iota
	Validating
	Trying
	Succeeded
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Trying:
		return "trying"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Transition is reported each time a resolution changes state.
// Index and Source identify the provider for Trying and Succeeded;
// Index is -1 otherwise, and Succeeded after exhaustion carries the synthetic source.
type Transition struct {
	State  State
	Index  int
	Source string
}
