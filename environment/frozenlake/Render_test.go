package frozenlake

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPolicyStringDrawsArrowsAndTerminals(t *testing.T) {
	lake, err := NewLake([][]string{
		{"S", "F"},
		{"H", "G"},
	})
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	got := PolicyString(lake, []int{Right, Down, Left, Left})
	want := "→↓\nHG"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValueGridMatchesLakeLayout(t *testing.T) {
	lake, err := NewLake([][]string{
		{"S", "F", "F"},
		{"F", "F", "G"},
	})
	if err != nil {
		t.Fatalf("could not parse lake: %v", err)
	}

	values := mat.NewVecDense(6, []float64{0, 1, 2, 3, 4, 5})
	grid := ValueGrid(lake, values)

	rows, cols := grid.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected a 2x3 grid, got %dx%d", rows, cols)
	}
	for s := 0; s < 6; s++ {
		row, col := lake.Coordinates(s)
		if got := grid.At(row, col); got != float64(s) {
			t.Errorf("expected value %d at (%d, %d), got %v", s, row, col,
				got)
		}
	}
}

func TestRenderMarksAgentPosition(t *testing.T) {
	f := newTestEnv(t, false)

	out := f.Render()
	if !strings.Contains(out, "(S)") {
		t.Errorf("expected the agent to be rendered at the start, got:\n%v",
			out)
	}

	action := mat.NewVecDense(1, []float64{float64(Right)})
	if _, _, err := f.Step(action); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if out := f.Render(); !strings.Contains(out, "(F)") {
		t.Errorf("expected the agent on a frozen cell, got:\n%v", out)
	}
}
