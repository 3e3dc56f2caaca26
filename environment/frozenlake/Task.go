package frozenlake

import (
	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
	ts "github.com/golake/golake/timestep"
)

// Default task rewards. Matching the usual FrozenLake scheme, only
// transitions into the goal are rewarded.
const (
	GoalReward     float64 = 1.0
	HoleReward     float64 = 0.0
	TimeStepReward float64 = 0.0
)

// ReachGoal is the task of navigating to the goal cell of a lake
// without falling into a hole. Episodes end when the agent enters a
// hole or the goal, or when the episode step limit is reached.
type ReachGoal struct {
	env.Starter
	lake *Lake

	stepLimit env.Ender

	goalReward float64
	holeReward float64
	stepReward float64
}

// NewReachGoal returns a new ReachGoal task on the argument lake with
// the default reward scheme. Episodes are cut off after cutoff steps.
// Start states are sampled uniformly from the lake's start cells.
func NewReachGoal(lake *Lake, cutoff int, seed uint64) *ReachGoal {
	starter := env.NewCategoricalStarter(lake.StartStates(),
		lake.NumStates(), seed)

	return &ReachGoal{
		Starter:    starter,
		lake:       lake,
		stepLimit:  env.NewStepLimit(cutoff),
		goalReward: GoalReward,
		holeReward: HoleReward,
		stepReward: TimeStepReward,
	}
}

// GetReward returns the reward for transitioning to nextState
func (r *ReachGoal) GetReward(_, _, nextState mat.Vector) float64 {
	state := maxOneHot(nextState)
	switch r.lake.At(state) {
	case Goal:
		return r.goalReward
	case Hole:
		return r.holeReward
	default:
		return r.stepReward
	}
}

// AtGoal returns whether the argument state is the goal state
func (r *ReachGoal) AtGoal(state mat.Matrix) bool {
	obs, ok := state.(mat.Vector)
	if !ok {
		return false
	}
	return r.lake.At(maxOneHot(obs)) == Goal
}

// End determines whether the argument timestep ends an episode,
// modifying the timestep accordingly
func (r *ReachGoal) End(t *ts.TimeStep) bool {
	if r.lake.Terminal(maxOneHot(t.Observation)) {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}

	return r.stepLimit.End(t)
}

// maxOneHot returns the state index encoded by a one-hot observation
func maxOneHot(obs mat.Vector) int {
	for i := 0; i < obs.Len(); i++ {
		if obs.AtVec(i) != 0.0 {
			return i
		}
	}
	return -1
}
