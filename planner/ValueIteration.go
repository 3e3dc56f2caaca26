package planner

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
)

// ValueIteration computes an optimal policy by repeatedly applying the
// Bellman optimality operator until the maximum change in value across
// all states falls below a convergence threshold
type ValueIteration struct {
	model         env.Model
	discount      float64
	theta         float64
	maxIterations int
}

// NewValueIteration returns a new ValueIteration planner. The theta
// argument is the convergence threshold on the maximum change in
// value across states, and maxIterations bounds the number of sweeps
// performed if convergence is not reached first.
func NewValueIteration(m env.Model, discount, theta float64,
	maxIterations int) (*ValueIteration, error) {
	if err := validate(m, discount, theta, maxIterations); err != nil {
		return nil, fmt.Errorf("valueIteration: %v", err)
	}

	return &ValueIteration{m, discount, theta, maxIterations}, nil
}

// Plan runs Value Iteration to convergence, returning the computed
// values, the greedy policy with respect to them, and the number of
// sweeps performed
func (v *ValueIteration) Plan() *Result {
	values := mat.NewVecDense(v.model.NumStates(), nil)

	iterations := 0
	for ; iterations < v.maxIterations; iterations++ {
		newValues, delta := bellmanOptimality(v.model, values, v.discount)
		values = newValues

		if delta < v.theta {
			iterations++
			break
		}
	}

	return &Result{
		Values:     values,
		Policy:     greedyActions(v.model, values, v.discount),
		Iterations: iterations,
	}
}

// bellmanOptimality applies one sweep of the Bellman optimality
// operator to values, returning the updated values and the maximum
// change across states
func bellmanOptimality(m env.Model, values *mat.VecDense,
	discount float64) (*mat.VecDense, float64) {
	newValues := mat.NewVecDense(values.Len(), nil)

	var delta float64
	for s := 0; s < m.NumStates(); s++ {
		best := actionValue(m, values, discount, s, 0)
		for a := 1; a < m.NumActions(); a++ {
			if q := actionValue(m, values, discount, s, a); q > best {
				best = q
			}
		}
		newValues.SetVec(s, best)

		if change := math.Abs(best - values.AtVec(s)); change > delta {
			delta = change
		}
	}

	return newValues, delta
}
