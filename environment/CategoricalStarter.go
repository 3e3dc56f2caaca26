package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled uniformly from a
// fixed set of enumerated states. Start states are returned as one-hot
// vectors over the state space.
type CategoricalStarter struct {
	states    []int
	numStates int
	rand      distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter which samples
// starting states uniformly from states. The numStates argument is the
// total number of states in the environment and determines the length
// of the one-hot start vectors.
func NewCategoricalStarter(states []int, numStates int,
	seed uint64) CategoricalStarter {
	source := rand.NewSource(seed)

	weights := make([]float64, len(states))
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return CategoricalStarter{states, numStates,
		distuv.NewCategorical(weights, source)}
}

// Start returns a starting state as a one-hot vector
func (c CategoricalStarter) Start() *mat.VecDense {
	state := c.states[int(c.rand.Rand())]

	start := mat.NewVecDense(c.numStates, nil)
	start.SetVec(state, 1.0)
	return start
}
