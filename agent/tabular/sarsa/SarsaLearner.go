package sarsa

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/timestep"
)

// sarsaLearner implements the update functionality for the SARSA
// algorithm. It also implements the agent's Policy: the next action
// used in each update target is sampled once when the transition is
// observed and returned by the following SelectAction call.
type sarsaLearner struct {
	behaviour *policy.EGreedy
	qtable    *mat.Dense

	step       timestep.TimeStep
	action     int
	nextStep   timestep.TimeStep
	nextAction *mat.VecDense

	learningRate float64

	decayEpsilon bool
	episodes     int
}

func newSarsaLearner(behaviour *policy.EGreedy, learningRate float64,
	decayEpsilon bool) *sarsaLearner {
	return &sarsaLearner{
		behaviour:    behaviour,
		qtable:       behaviour.Table(),
		learningRate: learningRate,
		decayEpsilon: decayEpsilon,
	}
}

// SelectAction returns the next action of the behaviour policy. If an
// action for the current timestep was already sampled when observing
// the previous transition, that same action is returned.
func (s *sarsaLearner) SelectAction(t timestep.TimeStep) *mat.VecDense {
	if s.nextAction == nil {
		s.nextAction = s.behaviour.SelectAction(t)
	}
	return s.nextAction
}

// ObserveFirst observes and records the first episodic timestep
func (s *sarsaLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}
	s.step = timestep.TimeStep{}
	s.nextStep = t
	s.nextAction = nil
}

// Observe observes and records any timestep other than the first
// timestep, sampling the next action from the behaviour policy
func (s *sarsaLearner) Observe(action mat.Vector,
	nextStep timestep.TimeStep) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: value-based methods should not "+
			"have multi-dimensional actions (action dim = %d)\n",
			action.Len())
	}
	s.step = s.nextStep
	s.action = int(action.AtVec(0))
	s.nextStep = nextStep

	if nextStep.Last() &&
		nextStep.EndType == timestep.TerminalStateReached {
		s.nextAction = nil
	} else {
		// Sampled even on cutoff timesteps so that the final update
		// of the episode can still bootstrap
		s.nextAction = s.behaviour.SelectAction(nextStep)
	}
}

// Step updates the action values of the agent's Learner and Policy
func (s *sarsaLearner) Step() {
	target := s.target()

	row := s.qtable.RowView(s.action)
	state := s.step.Observation
	currentEstimate := mat.Dot(row, state)

	scale := s.learningRate * (target - currentEstimate)

	newRow := mat.NewVecDense(row.Len(), nil)
	newRow.AddScaledVec(row, scale, state)
	s.qtable.SetRow(s.action, mat.Col(nil, 0, newRow))
}

// EndEpisode performs cleanup at the end of an episode. If ε decay is
// enabled, the behaviour policy's exploration rate is decayed on a
// GLIE schedule.
func (s *sarsaLearner) EndEpisode() {
	s.episodes++
	if s.decayEpsilon {
		s.behaviour.SetEpsilon(1.0 / float64(s.episodes+2))
	}
}

// target computes the SARSA update target, bootstrapping off the
// value of the next selected action. Terminal states have no future
// value.
func (s *sarsaLearner) target() float64 {
	discount := s.nextStep.Discount
	if s.nextStep.Last() &&
		s.nextStep.EndType == timestep.TerminalStateReached {
		discount = 0
	}

	var nextValue float64
	if s.nextAction != nil {
		nextValues := s.behaviour.ActionValues(s.nextStep.Observation)
		nextValue = nextValues.AtVec(int(s.nextAction.AtVec(0)))
	}

	return s.nextStep.Reward + discount*nextValue
}
