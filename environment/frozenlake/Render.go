package frozenlake

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// PolicyString formats a deterministic policy as a grid of arrows,
// one per lake cell. Terminal cells print their terrain letter
// instead, since no action is ever taken from them.
func PolicyString(l *Lake, policy []int) string {
	arrows := [NumActions]rune{'←', '↓', '→', '↑'}

	var str strings.Builder
	for s := 0; s < l.NumStates(); s++ {
		if l.Terminal(s) {
			str.WriteByte(byte(l.At(s)))
		} else {
			str.WriteRune(arrows[policy[s]])
		}
		if (s+1)%l.cols == 0 && s != l.NumStates()-1 {
			str.WriteByte('\n')
		}
	}
	return str.String()
}

// ValueGrid reshapes a value function over the lake's states into a
// matrix with the lake's dimensions, for printing
func ValueGrid(l *Lake, values *mat.VecDense) *mat.Dense {
	grid := mat.NewDense(l.rows, l.cols, nil)
	for s := 0; s < l.NumStates(); s++ {
		row, col := l.Coordinates(s)
		grid.Set(row, col, values.AtVec(s))
	}
	return grid
}
