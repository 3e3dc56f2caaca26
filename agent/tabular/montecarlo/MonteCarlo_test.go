package montecarlo

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/agent/tabular/policy"
	"github.com/golake/golake/environment/frozenlake"
	"github.com/golake/golake/experiment"
	ts "github.com/golake/golake/timestep"
)

const discount = 0.9

func newTestEnv(t *testing.T) *frozenlake.FrozenLake {
	t.Helper()

	lake, err := frozenlake.NewLake(frozenlake.FourByFour)
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	task := frozenlake.NewReachGoal(lake, 100, 42)
	f, _, err := frozenlake.New(lake, task, discount, false, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}

	return f
}

func oneHot(state, numStates int) *mat.VecDense {
	obs := mat.NewVecDense(numStates, nil)
	obs.SetVec(state, 1.0)
	return obs
}

func TestConfigValidation(t *testing.T) {
	f := newTestEnv(t)

	for _, e := range []float64{-0.1, 1.5} {
		if _, err := New(f, Config{Epsilon: e}, 42); err == nil {
			t.Errorf("expected an error for epsilon %v", e)
		}
	}
}

func TestMonteCarloImprovesOnDeterministicLake(t *testing.T) {
	f := newTestEnv(t)

	a, err := New(f, Config{Epsilon: 1.0}, 42)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	e := experiment.NewOnline(f, a, 100_000, nil)
	if err := e.Run(); err != nil {
		t.Fatalf("experiment failed: %v", err)
	}

	// Exploration is decayed toward greedy in the limit
	if eps := a.Epsilon(); eps >= 0.01 {
		t.Errorf("expected epsilon to have decayed below 0.01, got %v", eps)
	}

	rate, err := experiment.SuccessRate(f, a.GreedyPolicy(), 100, 100)
	if err != nil {
		t.Fatalf("could not evaluate policy: %v", err)
	}
	if rate < 0.5 {
		t.Errorf("expected the greedy policy to reach the goal in most "+
			"episodes, got success rate %v", rate)
	}
}

func TestEndEpisodeAveragesFirstVisitReturns(t *testing.T) {
	f := newTestEnv(t)
	n := f.Lake().NumStates()

	behaviour, err := policy.NewEGreedy(1.0, 42, f)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	m := newMCLearner(behaviour)

	down := mat.NewVecDense(1, []float64{float64(frozenlake.Down)})

	// An episode revisiting the start state: only the first visit of
	// each (state, action) pair contributes to the update
	m.ObserveFirst(ts.New(ts.First, 0, discount, oneHot(0, n), 0))
	m.Observe(down, ts.New(ts.Mid, 0, discount, oneHot(0, n), 1))
	m.Observe(down, ts.New(ts.Mid, 0, discount, oneHot(4, n), 2))

	last := ts.New(ts.Last, 1.0, discount, oneHot(8, n), 3)
	last.SetEnd(ts.TerminalStateReached)
	m.Observe(down, last)
	m.EndEpisode()

	// The first visit of (start, down) is two steps from the reward
	if got, want := m.qtable.At(frozenlake.Down, 0),
		discount*discount; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected a first-visit return of %v, got %v", want, got)
	}
	if got := m.qtable.At(frozenlake.Down, 4); got != 1.0 {
		t.Errorf("expected a return of 1 one step from the reward, got %v",
			got)
	}
	if got := m.visits.At(frozenlake.Down, 0); got != 1.0 {
		t.Errorf("expected a single first visit, got %v", got)
	}

	// A second episode with a different outcome is averaged in
	m.ObserveFirst(ts.New(ts.First, 0, discount, oneHot(0, n), 0))
	failed := ts.New(ts.Last, 0, discount, oneHot(4, n), 1)
	failed.SetEnd(ts.TerminalStateReached)
	m.Observe(down, failed)
	m.EndEpisode()

	want := discount * discount / 2
	if got := m.qtable.At(frozenlake.Down, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected the sample average %v, got %v", want, got)
	}
}

func TestEndEpisodeDecaysEpsilon(t *testing.T) {
	f := newTestEnv(t)
	n := f.Lake().NumStates()

	a, err := New(f, Config{Epsilon: 1.0}, 42)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	for k := 1; k <= 5; k++ {
		a.ObserveFirst(ts.New(ts.First, 0, discount, oneHot(0, n), 0))
		a.EndEpisode()
		if got, want := a.Epsilon(), 1.0/float64(k+2); got != want {
			t.Errorf("expected epsilon %v after %d episodes, got %v",
				want, k, got)
		}
	}
}
