package frozenlake

import (
	"fmt"
	"strings"
)

// Cell describes the terrain of a single cell in a lake map
type Cell byte

const (
	Start  Cell = 'S'
	Frozen Cell = 'F'
	Hole   Cell = 'H'
	Goal   Cell = 'G'
)

// Built-in lake maps. These are the standard 4x4 and 8x8 FrozenLake
// layouts.
var (
	FourByFour = [][]string{
		{"S", "F", "F", "F"},
		{"F", "H", "F", "H"},
		{"F", "F", "F", "H"},
		{"H", "F", "F", "G"},
	}

	EightByEight = [][]string{
		{"S", "F", "F", "F", "F", "F", "F", "F"},
		{"F", "F", "F", "F", "F", "F", "F", "F"},
		{"F", "F", "F", "H", "F", "F", "F", "F"},
		{"F", "F", "F", "F", "F", "H", "F", "F"},
		{"F", "F", "F", "H", "F", "F", "F", "F"},
		{"F", "H", "H", "F", "F", "F", "H", "F"},
		{"F", "H", "F", "F", "H", "F", "H", "F"},
		{"F", "F", "F", "H", "F", "F", "F", "G"},
	}
)

// Lake describes a lake layout: a grid of cells, each of which is the
// starting cell, frozen surface, a hole, or the goal. States are
// enumerated in row-major order starting from the top-left cell.
type Lake struct {
	rows, cols int
	cells      []Cell
}

// NewLake parses a lake layout from a grid of cell descriptions, e.g.
// frozenlake.FourByFour. Each cell must be one of "S", "F", "H", or
// "G", and the grid must contain at least one "S" and at least one "G".
func NewLake(rows [][]string) (*Lake, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("newLake: empty lake map")
	}

	numRows := len(rows)
	numCols := len(rows[0])
	cells := make([]Cell, 0, numRows*numCols)

	var starts, goals int
	for i, row := range rows {
		if len(row) != numCols {
			return nil, fmt.Errorf("newLake: row %d has %d cells, "+
				"expected %d", i, len(row), numCols)
		}
		for j, cell := range row {
			if len(cell) != 1 {
				return nil, fmt.Errorf("newLake: cell (%d, %d) = %q is "+
					"not a single character", i, j, cell)
			}
			switch c := Cell(cell[0]); c {
			case Start:
				starts++
				cells = append(cells, c)
			case Goal:
				goals++
				cells = append(cells, c)
			case Frozen, Hole:
				cells = append(cells, c)
			default:
				return nil, fmt.Errorf("newLake: unknown cell %q at "+
					"(%d, %d)", cell, i, j)
			}
		}
	}
	if starts == 0 {
		return nil, fmt.Errorf("newLake: lake map has no start cell")
	}
	if goals == 0 {
		return nil, fmt.Errorf("newLake: lake map has no goal cell")
	}

	return &Lake{numRows, numCols, cells}, nil
}

// Dims returns the rows and columns of the lake
func (l *Lake) Dims() (rows, cols int) {
	return l.rows, l.cols
}

// NumStates returns the number of states in the lake
func (l *Lake) NumStates() int {
	return l.rows * l.cols
}

// At returns the cell at the argument state
func (l *Lake) At(state int) Cell {
	return l.cells[state]
}

// Coordinates returns the (row, col) coordinates of a state
func (l *Lake) Coordinates(state int) (row, col int) {
	return state / l.cols, state % l.cols
}

// StateAt returns the state index of coordinates (row, col)
func (l *Lake) StateAt(row, col int) int {
	return row*l.cols + col
}

// StartStates returns the states from which episodes may begin
func (l *Lake) StartStates() []int {
	var starts []int
	for i, cell := range l.cells {
		if cell == Start {
			starts = append(starts, i)
		}
	}
	return starts
}

// Terminal returns whether the argument state ends an episode. Both
// holes and the goal are terminal.
func (l *Lake) Terminal(state int) bool {
	return l.cells[state] == Hole || l.cells[state] == Goal
}

func (l *Lake) String() string {
	var str strings.Builder
	for i, cell := range l.cells {
		str.WriteByte(byte(cell))
		if (i+1)%l.cols == 0 && i != len(l.cells)-1 {
			str.WriteByte('\n')
		}
	}
	return str.String()
}
