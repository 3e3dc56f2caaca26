// Package planner implements dynamic-programming algorithms for
// solving environments with known dynamics: policy evaluation, Value
// Iteration, and Policy Iteration.
//
// Planners consume an environment.Model rather than interacting with
// an Environment through sampled transitions. States and actions are
// enumerated, value functions are vectors over states, and policies
// are either deterministic (one action per state) or stochastic
// (a matrix with one row of action probabilities per state).
package planner

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
)

// Result holds the output of a planning algorithm: the computed state
// values, the greedy policy with respect to those values, and the
// number of iterations used to compute them.
type Result struct {
	Values     *mat.VecDense
	Policy     []int
	Iterations int
}

// validate checks the hyperparameters shared by all planners
func validate(m env.Model, discount, theta float64,
	maxIterations int) error {
	if discount < 0 || discount >= 1 {
		return fmt.Errorf("discount must be in [0, 1), got %v", discount)
	}
	if theta <= 0 {
		return fmt.Errorf("convergence threshold must be positive, "+
			"got %v", theta)
	}
	if maxIterations <= 0 {
		return fmt.Errorf("maximum iterations must be positive, got %d",
			maxIterations)
	}
	return env.ValidateModel(m)
}

// actionValue computes the expected return of taking the argument
// action in the argument state and following values thereafter.
// Terminal successor states have no future value.
func actionValue(m env.Model, values *mat.VecDense, discount float64,
	state, action int) float64 {
	var q float64
	for _, outcome := range m.Transitions(state, action) {
		future := 0.0
		if !outcome.Terminal {
			future = discount * values.AtVec(outcome.NextState)
		}
		q += outcome.Prob * (outcome.Reward + future)
	}
	return q
}

// greedyActions returns, for each state, the first action maximizing
// the one-step lookahead under values
func greedyActions(m env.Model, values *mat.VecDense,
	discount float64) []int {
	policy := make([]int, m.NumStates())
	for s := range policy {
		best, bestValue := 0, actionValue(m, values, discount, s, 0)
		for a := 1; a < m.NumActions(); a++ {
			if q := actionValue(m, values, discount, s, a); q > bestValue {
				best, bestValue = a, q
			}
		}
		policy[s] = best
	}
	return policy
}

// StochasticFromDeterministic converts a deterministic policy into a
// policy matrix with one row of action probabilities per state
func StochasticFromDeterministic(policy []int, numActions int) *mat.Dense {
	probs := mat.NewDense(len(policy), numActions, nil)
	for s, a := range policy {
		probs.Set(s, a, 1.0)
	}
	return probs
}

// UniformRandom returns the policy selecting every action with equal
// probability in every state
func UniformRandom(numStates, numActions int) *mat.Dense {
	probs := mat.NewDense(numStates, numActions, nil)
	for s := 0; s < numStates; s++ {
		for a := 0; a < numActions; a++ {
			probs.Set(s, a, 1.0/float64(numActions))
		}
	}
	return probs
}
