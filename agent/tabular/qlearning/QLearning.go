// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning is off-policy: actions are selected from an ε-greedy
// behaviour policy, while the update target bootstraps from the
// maximum action value in the next state.
package qlearning

import (
	"fmt"

	"github.com/golake/golake/agent"
	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/environment"
)

// QLearning implements the tabular Q-Learning algorithm
type QLearning struct {
	agent.Learner
	agent.Policy // Behaviour
	Target       agent.Policy
	seed         uint64
}

// New creates a new QLearning agent on the argument environment
func New(env environment.Environment, config Config,
	seed uint64) (*QLearning, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	behaviour, err := policy.NewEGreedy(config.Epsilon, seed, env)
	if err != nil {
		return nil, fmt.Errorf("qlearning: invalid behaviour policy: %v",
			err)
	}

	target, err := policy.NewGreedy(seed, env)
	if err != nil {
		return nil, fmt.Errorf("qlearning: invalid target policy: %v", err)
	}

	// The learner and both policies share a single table so that
	// updates are reflected in action selection
	if err := target.SetTable(behaviour.Table()); err != nil {
		return nil, fmt.Errorf("qlearning: could not share action "+
			"values: %v", err)
	}

	learner := newQLearner(behaviour, config.LearningRate,
		config.DecayEpsilon)

	return &QLearning{learner, behaviour, target, seed}, nil
}

// GreedyPolicy returns the greedy policy with respect to the agent's
// current action value estimates
func (q *QLearning) GreedyPolicy() agent.Policy {
	return q.Target
}
