package timestep

// EndType describes the way in which an episode ended, either by the
// agent reaching a terminal state or by an episode step limit cutting
// the episode off.
type EndType int

const (
	// TerminalStateReached indicates that an episode ended in a
	// terminal state of the environment
	TerminalStateReached EndType = iota

	// Timeout indicates that an episode was cut off by a step limit
	Timeout

	// Nil indicates that the episode has not yet ended
	Nil
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Nil"
	}
}

// SetEnd records the way in which the episode ended on the TimeStep
func (t *TimeStep) SetEnd(e EndType) {
	t.EndType = e
}
