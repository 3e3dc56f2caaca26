package qlearning

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/timestep"
)

// qLearner implements the update functionality for the Q-Learning
// algorithm
type qLearner struct {
	behaviour *policy.EGreedy
	qtable    *mat.Dense

	step     timestep.TimeStep
	action   int
	nextStep timestep.TimeStep

	learningRate float64

	decayEpsilon bool
	episodes     int
}

// newQLearner creates a new qLearner which updates the action value
// table of the argument behaviour policy
func newQLearner(behaviour *policy.EGreedy, learningRate float64,
	decayEpsilon bool) *qLearner {
	return &qLearner{
		behaviour:    behaviour,
		qtable:       behaviour.Table(),
		learningRate: learningRate,
		decayEpsilon: decayEpsilon,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *qLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (q *qLearner) Observe(action mat.Vector, nextStep timestep.TimeStep) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: value-based methods should not "+
			"have multi-dimensional actions (action dim = %d)\n",
			action.Len())
	}
	q.step = q.nextStep
	q.action = int(action.AtVec(0))
	q.nextStep = nextStep
}

// Step updates the action values of the agent's Learner and Policy
func (q *qLearner) Step() {
	target := q.target()

	// Find the current estimate of the taken action
	row := q.qtable.RowView(q.action)
	state := q.step.Observation
	currentEstimate := mat.Dot(row, state)

	// Scale the one-hot state by the TD error and learning rate
	scale := q.learningRate * (target - currentEstimate)

	newRow := mat.NewVecDense(row.Len(), nil)
	newRow.AddScaledVec(row, scale, state)
	q.qtable.SetRow(q.action, mat.Col(nil, 0, newRow))
}

// EndEpisode performs cleanup at the end of an episode. If ε decay is
// enabled, the behaviour policy's exploration rate is decayed on a
// GLIE schedule.
func (q *qLearner) EndEpisode() {
	q.episodes++
	if q.decayEpsilon {
		q.behaviour.SetEpsilon(1.0 / float64(q.episodes+2))
	}
}

// TdError returns the TD error of the argument transition under the
// learner's current action value estimates. As in target(), only true
// terminal states zero the future value; cutoff transitions still
// bootstrap.
func (q *qLearner) TdError(t timestep.Transition) float64 {
	nextValues := q.behaviour.ActionValues(t.NextState)
	maxVal := mat.Max(nextValues)

	discount := t.Discount
	if t.End && t.EndType == timestep.TerminalStateReached {
		discount = 0
	}

	action := int(t.Action.AtVec(0))
	currentEstimate := mat.Dot(q.qtable.RowView(action), t.State)

	return t.Reward + discount*maxVal - currentEstimate
}

// target computes the Q-Learning update target, bootstrapping off the
// maximum action value in the next state. Terminal states have no
// future value.
func (q *qLearner) target() float64 {
	actionValues := q.behaviour.ActionValues(q.nextStep.Observation)
	maxVal := mat.Max(actionValues)

	discount := q.nextStep.Discount
	if q.nextStep.Last() &&
		q.nextStep.EndType == timestep.TerminalStateReached {
		discount = 0
	}

	return q.nextStep.Reward + discount*maxVal
}
