// Package fourrooms implements the deterministic Four Rooms gridworld
// of Sutton, Precup, and Singh (1999), in the adapted 13x13 layout
// presented by Botvinick, Niv, and Barto (2009).
package fourrooms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gohrl/environment"
	"github.com/samuelfneumann/gohrl/utils/matutils"
)

// Size is the width and height of the square grid, including the
// outer walls
const Size = 13

// MoveSet selects the action space of the environment
type MoveSet int

const (
	// Cardinal provides the four axis-aligned moves
	Cardinal MoveSet = iota

	// Kings provides the eight directional moves plus a no-op
	Kings
)

// cardinalMoves maps action indices to (x, y) directions
var cardinalMoves = [][2]int{
	{1, 0},  // Right
	{0, 1},  // Up
	{-1, 0}, // Left
	{0, -1}, // Down
}

// kingsMoves additionally includes the diagonals and a no-op
var kingsMoves = [][2]int{
	{1, 0},   // Right
	{1, 1},   // Up-Right
	{0, 1},   // Up
	{-1, 1},  // Up-Left
	{-1, 0},  // Left
	{-1, -1}, // Down-Left
	{0, -1},  // Down
	{1, -1},  // Down-Right
	{0, 0},   // No-op
}

// FourRooms is a deterministic Four Rooms domain over Cartesian (x, y)
// agent locations. Coordinates increase left-to-right and
// bottom-to-top, ranging over 1 to Size-2 because of the outer walls.
type FourRooms struct {
	// wallsRC is indexed by (row, column) using standard matrix
	// conventions: rows ordered top-to-bottom, columns
	// left-to-right
	wallsRC [Size][Size]bool

	moves [][2]int
}

// New creates a Four Rooms environment with the given move set
func New(moves MoveSet) (*FourRooms, error) {
	f := &FourRooms{}

	switch moves {
	case Cardinal:
		f.moves = cardinalMoves
	case Kings:
		f.moves = kingsMoves
	default:
		return nil, fmt.Errorf("new: no such move set %v", moves)
	}

	// Surround the environment with walls
	for i := 0; i < Size; i++ {
		f.wallsRC[0][i] = true
		f.wallsRC[Size-1][i] = true
		f.wallsRC[i][0] = true
		f.wallsRC[i][Size-1] = true
	}

	// Center vertical wall (col 6), with doorways at rows 3 and 10
	for r := 1; r < Size-1; r++ {
		if r != 3 && r != 10 {
			f.wallsRC[r][6] = true
		}
	}

	// Left horizontal wall (row 6), with a doorway at col 2
	for c := 1; c < 6; c++ {
		if c != 2 {
			f.wallsRC[6][c] = true
		}
	}

	// Right horizontal wall (row 7), with a doorway at col 9
	for c := 7; c < Size-1; c++ {
		if c != 9 {
			f.wallsRC[7][c] = true
		}
	}

	return f, nil
}

// WallAt returns whether the given Cartesian (x, y) location collides
// with a wall. Locations outside the grid are considered walls.
func (f *FourRooms) WallAt(x, y int) bool {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return true
	}
	// row = Size - 1 - y converts bottom-up y into top-down rows
	return f.wallsRC[Size-1-y][x]
}

// ValidXY returns whether (x, y) is a location the agent may occupy
func (f *FourRooms) ValidXY(x, y int) bool {
	return x >= 1 && x <= Size-2 && y >= 1 && y <= Size-2 && !f.WallAt(x, y)
}

// States returns every valid agent location as a length-2 vector,
// enumerated x-major then y. This order fixes the vertex indexing of
// the state-transition graph.
func (f *FourRooms) States() []mat.Vector {
	var states []mat.Vector
	for x := 1; x <= Size-2; x++ {
		for y := 1; y <= Size-2; y++ {
			if f.ValidXY(x, y) {
				states = append(states, mat.NewVecDense(2, []float64{
					float64(x), float64(y),
				}))
			}
		}
	}
	return states
}

// Transition returns the location reached by taking the given action
// at the given location. Moves into walls or out of bounds leave the
// agent in place. The returned vector never aliases the input.
func (f *FourRooms) Transition(state mat.Vector, action int) mat.Vector {
	x, y := int(state.AtVec(0)), int(state.AtVec(1))

	move := f.moves[action]
	newX, newY := x+move[0], y+move[1]

	if !f.ValidXY(newX, newY) {
		newX, newY = x, y
	}

	return mat.NewVecDense(2, []float64{float64(newX), float64(newY)})
}

// Actions returns the size of the action space
func (f *FourRooms) Actions() int {
	return len(f.moves)
}

// ObservationSpec returns the bounds of valid agent locations
func (f *FourRooms) ObservationSpec() environment.Spec {
	bounds := r1.Interval{Min: 1, Max: Size - 2}
	return environment.Spec{
		Type:        environment.Observation,
		Bounds:      []r1.Interval{bounds, bounds},
		Cardinality: environment.Discrete,
	}
}

// ActionSpec returns the bounds of the discrete action space
func (f *FourRooms) ActionSpec() environment.Spec {
	return environment.Spec{
		Type:        environment.Action,
		Bounds:      []r1.Interval{{Min: 0, Max: float64(len(f.moves) - 1)}},
		Cardinality: environment.Discrete,
	}
}

// String renders the wall layout as a 0-1 matrix in (row, column)
// space
func (f *FourRooms) String() string {
	walls := mat.NewDense(Size, Size, nil)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if f.wallsRC[r][c] {
				walls.Set(r, c, 1)
			}
		}
	}
	return fmt.Sprintf("FourRooms | Actions: %d\n%v", len(f.moves),
		matutils.Format(walls))
}
