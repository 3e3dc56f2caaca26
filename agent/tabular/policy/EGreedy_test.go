package policy

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/golake/golake/environment/frozenlake"
	ts "github.com/golake/golake/timestep"
)

func newTestEnv(t *testing.T) *frozenlake.FrozenLake {
	t.Helper()

	lake, err := frozenlake.NewLake(frozenlake.FourByFour)
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	task := frozenlake.NewReachGoal(lake, 100, 42)
	f, _, err := frozenlake.New(lake, task, 0.9, false, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}

	return f
}

func stepAt(state, numStates int) ts.TimeStep {
	obs := mat.NewVecDense(numStates, nil)
	obs.SetVec(state, 1.0)
	return ts.New(ts.Mid, 0, 0.9, obs, 1)
}

func TestNewEGreedyRejectsInvalidEpsilon(t *testing.T) {
	f := newTestEnv(t)

	for _, e := range []float64{-0.1, 1.1} {
		if _, err := NewEGreedy(e, 42, f); err == nil {
			t.Errorf("expected an error for epsilon %v", e)
		}
	}
}

func TestGreedySelectsMaximalAction(t *testing.T) {
	f := newTestEnv(t)

	p, err := NewGreedy(42, f)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	p.Table().Set(frozenlake.Down, 0, 1.0)

	step := stepAt(0, f.Lake().NumStates())
	for i := 0; i < 100; i++ {
		action := p.SelectAction(step)
		if a := int(action.AtVec(0)); a != frozenlake.Down {
			t.Fatalf("expected the maximal action %v, got %v",
				frozenlake.ActionName(frozenlake.Down),
				frozenlake.ActionName(a))
		}
	}
}

func TestGreedySplitsTies(t *testing.T) {
	f := newTestEnv(t)

	p, err := NewGreedy(42, f)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	p.Table().Set(frozenlake.Down, 0, 5.0)
	p.Table().Set(frozenlake.Right, 0, 5.0)

	step := stepAt(0, f.Lake().NumStates())
	counts := make(map[int]int)
	const samples = 10_000
	for i := 0; i < samples; i++ {
		counts[int(p.SelectAction(step).AtVec(0))]++
	}

	if counts[frozenlake.Left] != 0 || counts[frozenlake.Up] != 0 {
		t.Errorf("greedy policy selected a non-maximal action: %v", counts)
	}
	for _, a := range []int{frozenlake.Down, frozenlake.Right} {
		frac := float64(counts[a]) / samples
		if math.Abs(frac-0.5) > 0.05 {
			t.Errorf("expected %v about half the time, got %v",
				frozenlake.ActionName(a), frac)
		}
	}
}

func TestEGreedyExploresAtRateEpsilon(t *testing.T) {
	f := newTestEnv(t)

	const epsilon = 0.4
	p, err := NewEGreedy(epsilon, 42, f)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	p.Table().Set(frozenlake.Up, 0, 1.0)

	step := stepAt(0, f.Lake().NumStates())
	counts := make(map[int]int)
	const samples = 10_000
	for i := 0; i < samples; i++ {
		counts[int(p.SelectAction(step).AtVec(0))]++
	}

	// The maximal action is chosen with probability 1-ε+ε/|A|, every
	// other action with probability ε/|A|
	pMax := 1 - epsilon + epsilon/float64(frozenlake.NumActions)
	pOther := epsilon / float64(frozenlake.NumActions)
	for a := 0; a < frozenlake.NumActions; a++ {
		want := pOther
		if a == frozenlake.Up {
			want = pMax
		}
		frac := float64(counts[a]) / samples
		if math.Abs(frac-want) > 0.03 {
			t.Errorf("expected %v with probability %v, got %v",
				frozenlake.ActionName(a), want, frac)
		}
	}
}

func TestSetTableSharesValues(t *testing.T) {
	f := newTestEnv(t)

	behaviour, err := NewEGreedy(0.1, 42, f)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	target, err := NewGreedy(42, f)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	if err := target.SetTable(behaviour.Table()); err != nil {
		t.Fatalf("could not share table: %v", err)
	}

	behaviour.Table().Set(frozenlake.Left, 3, 2.5)

	obs := mat.NewVecDense(f.Lake().NumStates(), nil)
	obs.SetVec(3, 1.0)
	if got := target.ActionValues(obs).AtVec(frozenlake.Left); got != 2.5 {
		t.Errorf("expected the target to see the update, got %v", got)
	}

	// Mismatched shapes are rejected
	if err := target.SetTable(mat.NewDense(2, 2, nil)); err == nil {
		t.Errorf("expected an error for a mis-shaped table")
	}
}

func TestDeterministicSelectsMappedAction(t *testing.T) {
	f := newTestEnv(t)
	n := f.Lake().NumStates()

	actions := make([]int, n)
	actions[5] = frozenlake.Up

	p, err := NewDeterministic(actions)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	if a := int(p.SelectAction(stepAt(5, n)).AtVec(0)); a != frozenlake.Up {
		t.Errorf("expected %v, got %v",
			frozenlake.ActionName(frozenlake.Up), frozenlake.ActionName(a))
	}
	if a := int(p.SelectAction(stepAt(0, n)).AtVec(0)); a != frozenlake.Left {
		t.Errorf("expected %v, got %v",
			frozenlake.ActionName(frozenlake.Left), frozenlake.ActionName(a))
	}

	if _, err := NewDeterministic(nil); err == nil {
		t.Errorf("expected an error for an empty policy")
	}
}
