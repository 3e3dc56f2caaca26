// Package frozenlake implements the FrozenLake gridworld environment.
//
// An agent moves over a frozen lake, starting at the start cell and
// navigating toward the goal cell. Some cells are holes: entering one
// ends the episode with no reward. Reaching the goal ends the episode
// with a reward of 1. When the lake is slippery, the agent moves in
// the intended direction with probability 1/3 and in each of the two
// perpendicular directions with probability 1/3.
package frozenlake

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	env "github.com/golake/golake/environment"
	ts "github.com/golake/golake/timestep"
	"github.com/golake/golake/utils/matutils"
)

// Actions available in the environment
const (
	Left int = iota
	Down
	Right
	Up
)

// NumActions is the number of actions in the environment
const NumActions int = 4

// ActionName returns a human-readable name for an action
func ActionName(action int) string {
	switch action {
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Unknown(%d)", action)
}

// FrozenLake implements the FrozenLake environment. Observations are
// one-hot vectors over the states of the lake.
type FrozenLake struct {
	env.Task
	lake *Lake

	slippery bool
	slip     distuv.Categorical

	position    int
	discount    float64
	currentStep ts.TimeStep
}

// New creates a new FrozenLake environment on the argument lake with
// task t and discount factor discount. If slippery is true, movement
// is stochastic.
func New(lake *Lake, t env.Task, discount float64, slippery bool,
	seed uint64) (*FrozenLake, ts.TimeStep, error) {
	if discount < 0 || discount >= 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: discount must be in "+
			"[0, 1), got %v", discount)
	}

	// Slipping moves the agent perpendicular to the intended
	// direction with probability 2/3 (1/3 per side)
	source := rand.NewSource(seed)
	slip := distuv.NewCategorical([]float64{1, 1, 1}, source)

	f := &FrozenLake{
		Task:     t,
		lake:     lake,
		slippery: slippery,
		slip:     slip,
		discount: discount,
	}

	step, err := f.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not reset "+
			"environment: %v", err)
	}

	return f, step, nil
}

// Lake returns the lake layout of the environment
func (f *FrozenLake) Lake() *Lake {
	return f.lake
}

// Reset resets the environment, returning the first timestep of the
// new episode
func (f *FrozenLake) Reset() (ts.TimeStep, error) {
	start := f.Start()
	position := maxOneHot(start)
	if position < 0 || position >= f.lake.NumStates() {
		return ts.TimeStep{}, fmt.Errorf("reset: invalid start state %d",
			position)
	}

	f.position = position
	step := ts.New(ts.First, 0, f.discount, start, 0)
	f.currentStep = step

	return step, nil
}

// Step takes one environmental step given an action, returning the
// next timestep and whether that timestep is the last in the episode
func (f *FrozenLake) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be " +
			"1-dimensional")
	}

	a := int(action.AtVec(0))
	if a < Left || a > Up {
		return ts.TimeStep{}, false, fmt.Errorf("step: no such action %d", a)
	}

	if f.slippery {
		// Rand() returns 0, 1, or 2, slipping to the action
		// counter-clockwise or clockwise of the intended one
		a = (a + int(f.slip.Rand()) + 3) % NumActions
	}

	nextPosition := nextState(f.lake, f.position, a)
	nextObs := f.observation(nextPosition)

	reward := f.GetReward(f.currentStep.Observation, action, nextObs)
	step := ts.New(ts.Mid, reward, f.discount, nextObs,
		f.currentStep.Number+1)
	last := f.End(&step)

	f.position = nextPosition
	f.currentStep = step

	return step, last, nil
}

// CurrentTimeStep returns the last timestep of the environment
func (f *FrozenLake) CurrentTimeStep() ts.TimeStep {
	return f.currentStep
}

// Model returns the full transition dynamics of the environment for
// use with model-based algorithms
func (f *FrozenLake) Model() env.Model {
	return &lakeModel{f.lake, f.Task, f.slippery}
}

// ObservationSpec returns the observation specification of the
// environment
func (f *FrozenLake) ObservationSpec() env.Spec {
	n := f.lake.NumStates()
	shape := mat.NewVecDense(n, nil)
	lowerBound := mat.NewVecDense(n, nil)
	upperBound := matutils.VecOnes(n)

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// ActionSpec returns the action specification of the environment
func (f *FrozenLake) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(Left)})
	upperBound := mat.NewVecDense(1, []float64{float64(Up)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// RewardSpec returns the reward specification of the environment
func (f *FrozenLake) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{HoleReward})
	upperBound := mat.NewVecDense(1, []float64{GoalReward})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound,
		env.Continuous)
}

// DiscountSpec returns the discount specification of the environment
func (f *FrozenLake) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{f.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// Render draws the lake as text, with the agent's current cell in
// parentheses
func (f *FrozenLake) Render() string {
	var str strings.Builder
	for i := 0; i < f.lake.NumStates(); i++ {
		if i == f.position {
			str.WriteByte('(')
			str.WriteByte(byte(f.lake.At(i)))
			str.WriteByte(')')
		} else {
			str.WriteByte(' ')
			str.WriteByte(byte(f.lake.At(i)))
			str.WriteByte(' ')
		}
		if (i+1)%f.lake.cols == 0 {
			str.WriteByte('\n')
		}
	}
	return str.String()
}

func (f *FrozenLake) String() string {
	row, col := f.lake.Coordinates(f.position)
	str := "FrozenLake | At: (%d, %d)  |  Slippery: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, row, col, f.slippery, f.lake.rows, f.lake.cols)
}

// observation returns the one-hot observation of a state
func (f *FrozenLake) observation(state int) *mat.VecDense {
	obs := mat.NewVecDense(f.lake.NumStates(), nil)
	obs.SetVec(state, 1.0)
	return obs
}

// nextState computes the state reached by moving in direction action
// from state. Moving off the edge of the lake leaves the agent in
// place.
func nextState(l *Lake, state, action int) int {
	row, col := l.Coordinates(state)

	switch action {
	case Left:
		if col > 0 {
			col--
		}
	case Down:
		if row < l.rows-1 {
			row++
		}
	case Right:
		if col < l.cols-1 {
			col++
		}
	case Up:
		if row > 0 {
			row--
		}
	}

	return l.StateAt(row, col)
}
