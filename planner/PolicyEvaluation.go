package planner

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
)

// EvaluatePolicy computes the value function of a stochastic policy by
// iterating the Bellman expectation operator until the maximum change
// in value across states falls below theta, or maxIterations sweeps
// have been performed. The policy matrix must have one row of action
// probabilities per state, with each row summing to 1.
func EvaluatePolicy(m env.Model, policy *mat.Dense, discount, theta float64,
	maxIterations int) (*mat.VecDense, int, error) {
	if err := validate(m, discount, theta, maxIterations); err != nil {
		return nil, 0, fmt.Errorf("evaluatePolicy: %v", err)
	}

	rows, cols := policy.Dims()
	if rows != m.NumStates() || cols != m.NumActions() {
		return nil, 0, fmt.Errorf("evaluatePolicy: policy shape (%d, %d) "+
			"does not match model (%d, %d)", rows, cols, m.NumStates(),
			m.NumActions())
	}
	for s := 0; s < rows; s++ {
		var total float64
		for a := 0; a < cols; a++ {
			total += policy.At(s, a)
		}
		if diff := total - 1.0; diff > env.ProbTolerance ||
			diff < -env.ProbTolerance {
			return nil, 0, fmt.Errorf("evaluatePolicy: action "+
				"probabilities for state %d sum to %v, expected 1", s, total)
		}
	}

	values := mat.NewVecDense(m.NumStates(), nil)

	iterations := 0
	for ; iterations < maxIterations; iterations++ {
		newValues, delta := expectationSweep(m, policy, values, discount)
		values = newValues

		if delta < theta {
			iterations++
			break
		}
	}

	return values, iterations, nil
}

// evaluateDeterministic computes the value function of a deterministic
// policy. Used by Policy Iteration, which carries policies as one
// action per state.
func evaluateDeterministic(m env.Model, policy []int, discount,
	theta float64, maxIterations int) (*mat.VecDense, int) {
	values := mat.NewVecDense(m.NumStates(), nil)

	iterations := 0
	for ; iterations < maxIterations; iterations++ {
		newValues := mat.NewVecDense(values.Len(), nil)

		var delta float64
		for s := 0; s < m.NumStates(); s++ {
			value := actionValue(m, values, discount, s, policy[s])
			newValues.SetVec(s, value)

			if change := math.Abs(value - values.AtVec(s)); change > delta {
				delta = change
			}
		}
		values = newValues

		if delta < theta {
			iterations++
			break
		}
	}

	return values, iterations
}

// expectationSweep applies one sweep of the Bellman expectation
// operator under the argument policy, returning the updated values and
// the maximum change across states
func expectationSweep(m env.Model, policy *mat.Dense, values *mat.VecDense,
	discount float64) (*mat.VecDense, float64) {
	newValues := mat.NewVecDense(values.Len(), nil)

	var delta float64
	for s := 0; s < m.NumStates(); s++ {
		var value float64
		for a := 0; a < m.NumActions(); a++ {
			if prob := policy.At(s, a); prob > 0 {
				value += prob * actionValue(m, values, discount, s, a)
			}
		}
		newValues.SetVec(s, value)

		if change := math.Abs(value - values.AtVec(s)); change > delta {
			delta = change
		}
	}

	return newValues, delta
}
