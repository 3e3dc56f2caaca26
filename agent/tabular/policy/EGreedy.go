// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/golake/golake/environment"
	"github.com/golake/golake/timestep"
	"github.com/golake/golake/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a table of action values.
// The table has one row per action and one column per state, and
// observations are one-hot vectors over states.
//
// If multiple actions share the maximum action value in a state, the
// greedy probability mass is split equally between them.
type EGreedy struct {
	qtable  *mat.Dense
	epsilon float64
	seed    rand.Source
}

// NewEGreedy constructs a new EGreedy policy, where e = epsilon is the
// probability with which a random action is selected. The action value
// table is sized from the environment's action and observation specs
// and initialized to zero.
func NewEGreedy(e float64, seed uint64,
	env environment.Environment) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("egreedy: epsilon must be in [0, 1], "+
			"got %v", e)
	}

	if env.ActionSpec().Shape.Len() != 1 {
		return nil, fmt.Errorf("egreedy: actions must be 1-dimensional")
	}
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("egreedy: actions must be discrete")
	}
	if env.ActionSpec().LowerBound.AtVec(0) != 0.0 {
		return nil, fmt.Errorf("egreedy: actions must be enumerated " +
			"starting from 0")
	}

	actions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1
	states := env.ObservationSpec().Shape.Len()

	qtable := mat.NewDense(actions, states, nil)
	source := rand.NewSource(seed)

	return &EGreedy{qtable, e, source}, nil
}

// Table returns the action value table of the policy
func (p *EGreedy) Table() *mat.Dense {
	return p.qtable
}

// SetTable sets the policy's action value table. SetTable is used to
// share a single table between a behaviour policy, a target policy,
// and a learner.
func (p *EGreedy) SetTable(qtable *mat.Dense) error {
	rows, cols := qtable.Dims()
	oldRows, oldCols := p.qtable.Dims()
	if rows != oldRows || cols != oldCols {
		return fmt.Errorf("setTable: table sizes (%d, %d) and (%d, %d) "+
			"do not match", rows, cols, oldRows, oldCols)
	}

	p.qtable = qtable
	return nil
}

// Epsilon returns the policy's current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the policy's exploration rate, e.g. for GLIE
// schedules which decay ε over time
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
}

// ActionValues returns the action values of the argument observation
func (p *EGreedy) ActionValues(obs mat.Vector) *mat.VecDense {
	numActions, _ := p.qtable.Dims()
	actionValues := mat.NewVecDense(numActions, nil)
	actionValues.MulVec(p.qtable, obs)
	return actionValues
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) *mat.VecDense {
	actionValues := p.ActionValues(t.Observation).RawVector().Data
	numActions := len(actionValues)

	// Each action gets probability ε/|A|, and the maximal actions
	// split the remaining 1-ε equally
	_, maxActions := floatutils.MaxSlice(actionValues)
	probabilities := make([]float64, numActions)
	for i := range probabilities {
		probabilities[i] = p.epsilon / float64(numActions)
	}
	for _, a := range maxActions {
		probabilities[a] += (1.0 - p.epsilon) / float64(len(maxActions))
	}

	dist := distuv.NewCategorical(probabilities, p.seed)

	return mat.NewVecDense(1, []float64{dist.Rand()})
}
