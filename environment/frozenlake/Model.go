package frozenlake

import (
	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
)

// lakeModel exposes the full transition dynamics of a FrozenLake
// environment. Terminal states are absorbing: every action keeps the
// agent in place with probability 1 and no reward.
type lakeModel struct {
	lake     *Lake
	task     env.Task
	slippery bool
}

// NumStates returns the number of states in the model
func (m *lakeModel) NumStates() int {
	return m.lake.NumStates()
}

// NumActions returns the number of actions in the model
func (m *lakeModel) NumActions() int {
	return NumActions
}

// Transitions returns all possible outcomes of taking action in state
func (m *lakeModel) Transitions(state, action int) []env.Outcome {
	if m.lake.Terminal(state) {
		return []env.Outcome{{Prob: 1.0, NextState: state, Reward: 0,
			Terminal: true}}
	}

	if !m.slippery {
		next := nextState(m.lake, state, action)
		return []env.Outcome{m.outcome(next, 1.0)}
	}

	outcomes := make([]env.Outcome, 0, 3)
	for _, a := range []int{(action + 3) % NumActions, action,
		(action + 1) % NumActions} {
		next := nextState(m.lake, state, a)
		outcomes = append(outcomes, m.outcome(next, 1.0/3.0))
	}
	return outcomes
}

// outcome constructs the Outcome of transitioning to next with the
// argument probability, with the reward determined by the task
func (m *lakeModel) outcome(next int, prob float64) env.Outcome {
	nextObs := mat.NewVecDense(m.lake.NumStates(), nil)
	nextObs.SetVec(next, 1.0)

	return env.Outcome{
		Prob:      prob,
		NextState: next,
		Reward:    m.task.GetReward(nil, nil, nextObs),
		Terminal:  m.lake.Terminal(next),
	}
}
