// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes end
type Ender interface {
	// End takes the most recent timestep in the environment. If the
	// episode should end given this timestep, End modifies the
	// timestep to have timestep.Last as its StepType, records the way
	// the episode ended on the timestep, and returns true.
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme and ending conditions for acting
// in some environment
type Task interface {
	Starter

	// GetReward returns the reward for taking an action in some state,
	// transitioning to nextState
	GetReward(state, action, nextState mat.Vector) float64

	// AtGoal returns whether the argument state is a goal state
	AtGoal(state mat.Matrix) bool

	// End determines whether the argument timestep ends an episode
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task

	// Reset resets the environment between episodes, returning the
	// first timestep of the new episode
	Reset() (timestep.TimeStep, error)

	// Step takes one environmental step given some action, returning
	// the next timestep and whether that timestep is the last in the
	// episode
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)

	// CurrentTimeStep returns the last timestep of the environment
	CurrentTimeStep() timestep.TimeStep

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Renderer is an Environment that can draw itself as text, e.g. for
// watching an agent move through a gridworld on the terminal
type Renderer interface {
	Environment
	Render() string
}
