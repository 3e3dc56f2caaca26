package montecarlo

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/timestep"
	"github.com/golake/golake/utils/matutils"
)

// visit records a single step of an episode: the enumerated state the
// agent was in, the action it took, and the reward it received for
// taking that action
type visit struct {
	state  int
	action int
	reward float64
}

// mcLearner implements the update functionality for first-visit Monte
// Carlo control. Updates happen only at episode boundaries.
type mcLearner struct {
	behaviour *policy.EGreedy
	qtable    *mat.Dense
	visits    *mat.Dense // per-(action, state) first-visit counts

	episode  []visit
	discount float64

	step     timestep.TimeStep
	episodes int
}

func newMCLearner(behaviour *policy.EGreedy) *mcLearner {
	rows, cols := behaviour.Table().Dims()

	return &mcLearner{
		behaviour: behaviour,
		qtable:    behaviour.Table(),
		visits:    mat.NewDense(rows, cols, nil),
	}
}

// ObserveFirst observes and records the first episodic timestep
func (m *mcLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}
	m.episode = m.episode[:0]
	m.step = t
	m.discount = t.Discount
}

// Observe records a transition in the episode buffer
func (m *mcLearner) Observe(action mat.Vector, nextStep timestep.TimeStep) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: value-based methods should not "+
			"have multi-dimensional actions (action dim = %d)\n",
			action.Len())
	}

	m.episode = append(m.episode, visit{
		state:  matutils.MaxVec(m.step.Observation),
		action: int(action.AtVec(0)),
		reward: nextStep.Reward,
	})
	m.step = nextStep
}

// Step is a no-op: Monte Carlo methods update from complete episodes
// only
func (m *mcLearner) Step() {}

// EndEpisode updates the action value table from the episode's
// first-visit returns and decays the behaviour policy's ε
func (m *mcLearner) EndEpisode() {
	// Accumulate the return backwards through the episode, so that
	// returns[i] is the discounted return from step i onward
	returns := make([]float64, len(m.episode))
	var g float64
	for i := len(m.episode) - 1; i >= 0; i-- {
		g = m.episode[i].reward + m.discount*g
		returns[i] = g
	}

	seen := make(map[[2]int]bool, len(m.episode))
	for i, v := range m.episode {
		key := [2]int{v.action, v.state}
		if seen[key] {
			continue
		}
		seen[key] = true

		// Sample-average update toward the first-visit return
		n := m.visits.At(v.action, v.state) + 1
		m.visits.Set(v.action, v.state, n)

		q := m.qtable.At(v.action, v.state)
		m.qtable.Set(v.action, v.state, q+(returns[i]-q)/n)
	}

	m.episode = m.episode[:0]
	m.episodes++
	m.behaviour.SetEpsilon(1.0 / float64(m.episodes+2))
}
