package frozenlake

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	env "github.com/golake/golake/environment"
	ts "github.com/golake/golake/timestep"
)

func newTestEnv(t *testing.T, slippery bool) *FrozenLake {
	t.Helper()

	lake, err := NewLake(FourByFour)
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	task := NewReachGoal(lake, 100, 42)
	f, step, err := New(lake, task, 0.9, slippery, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	if !step.First() {
		t.Fatalf("expected first timestep, got %v", step.StepType)
	}

	return f
}

func TestNewLakeRejectsMalformedMaps(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"empty", [][]string{}},
		{"ragged", [][]string{{"S", "F"}, {"F"}}},
		{"unknown cell", [][]string{{"S", "X"}, {"F", "G"}}},
		{"no start", [][]string{{"F", "F"}, {"F", "G"}}},
		{"no goal", [][]string{{"S", "F"}, {"F", "F"}}},
	}

	for _, test := range tests {
		if _, err := NewLake(test.rows); err == nil {
			t.Errorf("%v: expected an error, got none", test.name)
		}
	}
}

func TestNewRejectsInvalidDiscounts(t *testing.T) {
	lake, err := NewLake(FourByFour)
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}
	task := NewReachGoal(lake, 100, 42)

	for _, discount := range []float64{-0.1, 1.0, 1.5} {
		if _, _, err := New(lake, task, discount, false, 42); err == nil {
			t.Errorf("expected an error for discount %v", discount)
		}
	}
}

func TestLakeEnumeratesStatesRowMajor(t *testing.T) {
	lake, err := NewLake(FourByFour)
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	if n := lake.NumStates(); n != 16 {
		t.Fatalf("expected 16 states, got %d", n)
	}
	if got := lake.At(lake.StateAt(3, 3)); got != Goal {
		t.Errorf("expected goal at (3, 3), got %c", got)
	}
	if got := lake.At(lake.StateAt(1, 1)); got != Hole {
		t.Errorf("expected hole at (1, 1), got %c", got)
	}
	if starts := lake.StartStates(); len(starts) != 1 || starts[0] != 0 {
		t.Errorf("expected start states [0], got %v", starts)
	}
}

func TestDeterministicStepDynamics(t *testing.T) {
	f := newTestEnv(t, false)

	// Moving up or left from the start corner leaves the agent in
	// place
	for _, a := range []int{Up, Left} {
		action := mat.NewVecDense(1, []float64{float64(a)})
		step, last, err := f.Step(action)
		if err != nil {
			t.Fatalf("could not step: %v", err)
		}
		if last {
			t.Fatalf("%v from the start should not end the episode",
				ActionName(a))
		}
		if got := maxOneHot(step.Observation); got != 0 {
			t.Errorf("%v from the start moved the agent to state %d",
				ActionName(a), got)
		}
	}

	// Right moves along the top row
	action := mat.NewVecDense(1, []float64{float64(Right)})
	step, _, err := f.Step(action)
	if err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if got := maxOneHot(step.Observation); got != 1 {
		t.Errorf("expected state 1 after moving right, got %d", got)
	}
	if step.Reward != 0 {
		t.Errorf("expected no reward on a frozen cell, got %v", step.Reward)
	}
}

func TestHoleEndsEpisodeWithoutReward(t *testing.T) {
	f := newTestEnv(t, false)

	// Down then right enters the hole at (1, 1)
	for i, a := range []int{Down, Right} {
		action := mat.NewVecDense(1, []float64{float64(a)})
		step, last, err := f.Step(action)
		if err != nil {
			t.Fatalf("could not step: %v", err)
		}

		if i == 1 {
			if !last || !step.Last() {
				t.Fatalf("expected episode to end in the hole")
			}
			if step.EndType != ts.TerminalStateReached {
				t.Errorf("expected a terminal ending, got %v", step.EndType)
			}
			if step.Reward != 0 {
				t.Errorf("expected no reward in a hole, got %v", step.Reward)
			}
			if f.AtGoal(step.Observation) {
				t.Errorf("hole should not be a goal state")
			}
		}
	}
}

func TestGoalEndsEpisodeWithReward(t *testing.T) {
	f := newTestEnv(t, false)

	// Walk down the left column, then right along the bottom row
	path := []int{Down, Down, Right, Down, Right, Right}
	var last bool
	var reward float64
	for _, a := range path {
		action := mat.NewVecDense(1, []float64{float64(a)})
		step, l, err := f.Step(action)
		if err != nil {
			t.Fatalf("could not step: %v", err)
		}
		last, reward = l, step.Reward
	}

	if !last {
		t.Fatalf("expected episode to end at the goal")
	}
	if reward != GoalReward {
		t.Errorf("expected reward %v at the goal, got %v", GoalReward,
			reward)
	}
}

func TestModelProbabilitiesSumToOne(t *testing.T) {
	for _, slippery := range []bool{false, true} {
		f := newTestEnv(t, slippery)
		if err := env.ValidateModel(f.Model()); err != nil {
			t.Errorf("slippery=%v: %v", slippery, err)
		}
	}
}

func TestSlipperyModelOutcomes(t *testing.T) {
	f := newTestEnv(t, true)
	model := f.Model()

	// From the start corner, moving right can slip up (staying in
	// place) or down
	outcomes := model.Transitions(0, Right)
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	next := make(map[int]float64)
	for _, o := range outcomes {
		if math.Abs(o.Prob-1.0/3.0) > 1e-12 {
			t.Errorf("expected probability 1/3, got %v", o.Prob)
		}
		next[o.NextState] += o.Prob
	}

	// Slipping up from the corner leaves the agent in state 0
	for _, want := range []int{0, 1, 4} {
		if _, ok := next[want]; !ok {
			t.Errorf("expected state %d to be reachable, got %v", want,
				next)
		}
	}
}

func TestTerminalStatesAreAbsorbing(t *testing.T) {
	f := newTestEnv(t, false)
	model := f.Model()

	goal := f.Lake().StateAt(3, 3)
	for a := 0; a < model.NumActions(); a++ {
		outcomes := model.Transitions(goal, a)
		if len(outcomes) != 1 {
			t.Fatalf("expected a single outcome, got %d", len(outcomes))
		}
		o := outcomes[0]
		if o.NextState != goal || o.Prob != 1.0 || o.Reward != 0 ||
			!o.Terminal {
			t.Errorf("expected goal to be absorbing, got %+v", o)
		}
	}
}

func TestStepLimitCutsOffEpisodes(t *testing.T) {
	lake, err := NewLake(FourByFour)
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	task := NewReachGoal(lake, 3, 42)
	f, _, err := New(lake, task, 0.9, false, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}

	// Bouncing off the top wall never reaches a terminal state
	action := mat.NewVecDense(1, []float64{float64(Up)})
	var step = f.CurrentTimeStep()
	var last bool
	for i := 0; i < 3; i++ {
		step, last, err = f.Step(action)
		if err != nil {
			t.Fatalf("could not step: %v", err)
		}
	}

	if !last {
		t.Fatalf("expected the step limit to end the episode")
	}
	if step.EndType != ts.Timeout {
		t.Errorf("expected a timeout ending, got %v", step.EndType)
	}
}
