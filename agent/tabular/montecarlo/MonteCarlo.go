// Package montecarlo implements first-visit Monte Carlo control with
// GLIE exploration.
//
// Action values are updated from complete episodic returns rather than
// bootstrapped targets: at the end of each episode, the return from
// the first visit of every (state, action) pair is averaged into the
// action value table. The behaviour policy's ε is decayed as 1/(k+2)
// after episode k so that the policy is greedy in the limit.
package montecarlo

import (
	"fmt"

	"github.com/golake/golake/agent"
	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/environment"
)

// MonteCarlo implements first-visit Monte Carlo control with GLIE
// exploration
type MonteCarlo struct {
	*mcLearner
	*policy.EGreedy
	greedy *policy.EGreedy
	seed   uint64
}

// New creates a new MonteCarlo agent on the argument environment
func New(env environment.Environment, config Config,
	seed uint64) (*MonteCarlo, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("montecarlo: %v", err)
	}

	behaviour, err := policy.NewEGreedy(config.Epsilon, seed, env)
	if err != nil {
		return nil, fmt.Errorf("montecarlo: invalid behaviour policy: %v",
			err)
	}

	greedy, err := policy.NewGreedy(seed, env)
	if err != nil {
		return nil, fmt.Errorf("montecarlo: invalid greedy policy: %v",
			err)
	}
	if err := greedy.SetTable(behaviour.Table()); err != nil {
		return nil, fmt.Errorf("montecarlo: could not share action "+
			"values: %v", err)
	}

	learner := newMCLearner(behaviour)

	return &MonteCarlo{learner, behaviour, greedy, seed}, nil
}

// GreedyPolicy returns the greedy policy with respect to the agent's
// current action value estimates
func (m *MonteCarlo) GreedyPolicy() agent.Policy {
	return m.greedy
}
