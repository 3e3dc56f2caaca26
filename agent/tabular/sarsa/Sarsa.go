// Package sarsa implements the tabular SARSA algorithm.
//
// SARSA is on-policy temporal-difference control: the update target
// bootstraps from the action value of the action actually selected in
// the next state by the behaviour policy.
package sarsa

import (
	"fmt"

	"github.com/golake/golake/agent"
	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/environment"
)

// Sarsa implements the tabular SARSA algorithm. The embedded learner
// also acts as the agent's Policy: the action used in the next update
// target is the action returned by SelectAction, keeping the algorithm
// on-policy.
type Sarsa struct {
	*sarsaLearner
	greedy *policy.EGreedy
	seed   uint64
}

// New creates a new Sarsa agent on the argument environment
func New(env environment.Environment, config Config,
	seed uint64) (*Sarsa, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("sarsa: %v", err)
	}

	behaviour, err := policy.NewEGreedy(config.Epsilon, seed, env)
	if err != nil {
		return nil, fmt.Errorf("sarsa: invalid behaviour policy: %v", err)
	}

	greedy, err := policy.NewGreedy(seed, env)
	if err != nil {
		return nil, fmt.Errorf("sarsa: invalid greedy policy: %v", err)
	}
	if err := greedy.SetTable(behaviour.Table()); err != nil {
		return nil, fmt.Errorf("sarsa: could not share action values: %v",
			err)
	}

	learner := newSarsaLearner(behaviour, config.LearningRate,
		config.DecayEpsilon)

	return &Sarsa{learner, greedy, seed}, nil
}

// GreedyPolicy returns the greedy policy with respect to the agent's
// current action value estimates
func (s *Sarsa) GreedyPolicy() agent.Policy {
	return s.greedy
}
