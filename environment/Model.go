package environment

import "fmt"

// Outcome is a single possible result of taking an action in a state:
// with probability Prob the environment transitions to state NextState,
// emitting reward Reward. Terminal indicates whether NextState ends the
// episode.
type Outcome struct {
	Prob      float64
	NextState int
	Reward    float64
	Terminal  bool
}

// Model describes the full dynamics of an environment with finite
// state and action spaces. States and actions are enumerated
// (0, 1, ..., N-1). Model-based algorithms consume a Model instead of
// interacting with an Environment through sampled transitions.
type Model interface {
	NumStates() int
	NumActions() int

	// Transitions returns all possible outcomes of taking the given
	// action in the given state. The outcome probabilities must sum
	// to 1.
	Transitions(state, action int) []Outcome
}

// ProbTolerance is the maximum amount by which the outcome
// probabilities of a (state, action) pair may deviate from summing
// to 1 before the model is considered invalid.
const ProbTolerance float64 = 1e-9

// ValidateModel checks that the outcome probabilities of every
// (state, action) pair of the model sum to 1
func ValidateModel(m Model) error {
	for s := 0; s < m.NumStates(); s++ {
		for a := 0; a < m.NumActions(); a++ {
			var total float64
			for _, outcome := range m.Transitions(s, a) {
				if outcome.Prob < 0 {
					return fmt.Errorf("validateModel: negative "+
						"probability %v for state %d action %d",
						outcome.Prob, s, a)
				}
				total += outcome.Prob
			}
			if diff := total - 1.0; diff > ProbTolerance ||
				diff < -ProbTolerance {
				return fmt.Errorf("validateModel: transition "+
					"probabilities for state %d action %d sum to %v, "+
					"expected 1", s, a, total)
			}
		}
	}
	return nil
}
