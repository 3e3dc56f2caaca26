package timestep

import "gonum.org/v1/gonum/mat"

// Transition packages together a single (S, A, R, S') transition. The
// Action field holds the action selected in State, Reward is the reward
// received for taking that action, and NextState is the state the
// environment transitioned to.
type Transition struct {
	State     mat.Vector
	Action    mat.Vector
	Reward    float64
	Discount  float64
	NextState mat.Vector
	End       bool
	EndType   EndType
}

// NewTransition packages an action and the two timesteps surrounding it
// into a Transition
func NewTransition(step TimeStep, action mat.Vector,
	nextStep TimeStep) Transition {
	return Transition{
		State:     step.Observation,
		Action:    action,
		Reward:    nextStep.Reward,
		Discount:  nextStep.Discount,
		NextState: nextStep.Observation,
		End:       nextStep.Last(),
		EndType:   nextStep.EndType,
	}
}
