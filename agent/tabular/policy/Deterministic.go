package policy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/timestep"
	"github.com/golake/golake/utils/matutils"
)

// Deterministic implements a fixed deterministic policy, mapping each
// enumerated state to a single action. Deterministic policies are
// produced by planning algorithms and evaluated or rendered like any
// other policy.
type Deterministic struct {
	actions []int
}

// NewDeterministic returns a new Deterministic policy taking
// actions[s] in each enumerated state s
func NewDeterministic(actions []int) (*Deterministic, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("deterministic: policy has no states")
	}
	return &Deterministic{actions}, nil
}

// SelectAction returns the policy's action for the state encoded by
// the timestep's one-hot observation
func (d *Deterministic) SelectAction(t timestep.TimeStep) *mat.VecDense {
	state := matutils.MaxVec(t.Observation)
	return mat.NewVecDense(1, []float64{float64(d.actions[state])})
}
