package planner

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
)

// PolicyIteration computes an optimal policy by alternating full
// policy evaluation with greedy policy improvement until the policy
// is stable
type PolicyIteration struct {
	model         env.Model
	discount      float64
	theta         float64
	maxIterations int
}

// NewPolicyIteration returns a new PolicyIteration planner. The theta
// argument is the convergence threshold used during policy evaluation,
// and maxIterations bounds both the number of improvement steps and
// the number of sweeps within each evaluation.
func NewPolicyIteration(m env.Model, discount, theta float64,
	maxIterations int) (*PolicyIteration, error) {
	if err := validate(m, discount, theta, maxIterations); err != nil {
		return nil, fmt.Errorf("policyIteration: %v", err)
	}

	return &PolicyIteration{m, discount, theta, maxIterations}, nil
}

// Plan runs Policy Iteration until the policy is stable, returning
// the final policy, its value function, and the number of improvement
// steps performed
func (p *PolicyIteration) Plan() *Result {
	policy := make([]int, p.model.NumStates())
	var values *mat.VecDense

	iterations := 0
	for iterations < p.maxIterations {
		values, _ = evaluateDeterministic(p.model, policy, p.discount,
			p.theta, p.maxIterations)
		newPolicy := greedyActions(p.model, values, p.discount)
		iterations++

		stable := true
		for s := range policy {
			if newPolicy[s] != policy[s] {
				stable = false
				break
			}
		}
		policy = newPolicy

		if stable {
			break
		}
	}

	return &Result{
		Values:     values,
		Policy:     policy,
		Iterations: iterations,
	}
}
