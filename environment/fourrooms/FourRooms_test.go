package fourrooms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/environment/fourrooms"
	"github.com/samuelfneumann/gohrl/graph"
)

func newEnv(t *testing.T, moves fourrooms.MoveSet) *fourrooms.FourRooms {
	t.Helper()

	env, err := fourrooms.New(moves)
	require.NoError(t, err)
	return env
}

func TestNewInvalidMoveSet(t *testing.T) {
	_, err := fourrooms.New(fourrooms.MoveSet(99))
	assert.Error(t, err)
}

func TestActions(t *testing.T) {
	assert.Equal(t, 4, newEnv(t, fourrooms.Cardinal).Actions())
	assert.Equal(t, 9, newEnv(t, fourrooms.Kings).Actions())
}

func TestStates(t *testing.T) {
	// 11x11 interior cells minus 17 interior wall cells
	for _, moves := range []fourrooms.MoveSet{fourrooms.Cardinal,
		fourrooms.Kings} {
		env := newEnv(t, moves)
		states := env.States()

		assert.Len(t, states, 104)
		for _, s := range states {
			x, y := int(s.AtVec(0)), int(s.AtVec(1))
			assert.True(t, env.ValidXY(x, y), "state (%d, %d)", x, y)
		}
	}
}

func TestDoorways(t *testing.T) {
	env := newEnv(t, fourrooms.Cardinal)

	// The four doorway cells are open
	for _, door := range [][2]int{{6, 9}, {6, 2}, {2, 6}, {9, 5}} {
		assert.True(t, env.ValidXY(door[0], door[1]), "doorway %v", door)
	}

	// Wall cells beside the doorways are not
	for _, wall := range [][2]int{{6, 8}, {6, 10}, {6, 1}, {6, 3},
		{1, 6}, {3, 6}, {8, 5}, {10, 5}} {
		assert.True(t, env.WallAt(wall[0], wall[1]), "wall %v", wall)
		assert.False(t, env.ValidXY(wall[0], wall[1]), "wall %v", wall)
	}
}

func TestWallAtBounds(t *testing.T) {
	env := newEnv(t, fourrooms.Cardinal)

	assert.True(t, env.WallAt(-1, 5))
	assert.True(t, env.WallAt(5, -1))
	assert.True(t, env.WallAt(fourrooms.Size, 5))
	assert.True(t, env.WallAt(0, 0))
	assert.True(t, env.WallAt(12, 12))
}

func TestTransition(t *testing.T) {
	env := newEnv(t, fourrooms.Cardinal)
	state := mat.NewVecDense(2, []float64{1, 1})

	// Action order: right, up, left, down
	right := env.Transition(state, 0)
	assert.True(t, mat.Equal(mat.NewVecDense(2, []float64{2, 1}), right))

	up := env.Transition(state, 1)
	assert.True(t, mat.Equal(mat.NewVecDense(2, []float64{1, 2}), up))

	// Moves into the outer wall leave the agent in place
	left := env.Transition(state, 2)
	assert.True(t, mat.Equal(state, left))

	down := env.Transition(state, 3)
	assert.True(t, mat.Equal(state, down))
}

func TestTransitionIntoInteriorWall(t *testing.T) {
	env := newEnv(t, fourrooms.Cardinal)

	// (5, 3) is open; (6, 3) is part of the center vertical wall
	state := mat.NewVecDense(2, []float64{5, 3})
	next := env.Transition(state, 0)
	assert.True(t, mat.Equal(state, next))
}

func TestTransitionDoesNotAliasInput(t *testing.T) {
	env := newEnv(t, fourrooms.Kings)
	state := mat.NewVecDense(2, []float64{3, 3})

	next := env.Transition(state, 8) // No-op
	require.True(t, mat.Equal(state, next))

	next.(*mat.VecDense).SetVec(0, 99)
	assert.Equal(t, 3.0, state.AtVec(0))
}

func TestKingsDiagonal(t *testing.T) {
	env := newEnv(t, fourrooms.Kings)
	state := mat.NewVecDense(2, []float64{3, 3})

	upRight := env.Transition(state, 1)
	assert.True(t, mat.Equal(mat.NewVecDense(2, []float64{4, 4}), upRight))

	downLeft := env.Transition(state, 5)
	assert.True(t, mat.Equal(mat.NewVecDense(2, []float64{2, 2}), downLeft))
}

func TestExampleRegionsLabels(t *testing.T) {
	env := newEnv(t, fourrooms.Cardinal)
	states := env.States()

	// Each room's cells map to one region of the transition graph
	g, err := graph.NewTransitionGraph(env)
	require.NoError(t, err)

	regions, err := fourrooms.ExampleRegions(g)
	require.NoError(t, err)
	require.Equal(t, 4, regions.NumComponents())

	for v, s := range states {
		x, y := int(s.AtVec(0)), int(s.AtVec(1))
		label := regions.Label(v)

		switch {
		case x < 6 && y <= 6:
			assert.Equal(t, 0, label, "(%d, %d)", x, y)
		case x >= 6 && y <= 5:
			assert.Equal(t, 1, label, "(%d, %d)", x, y)
		case x <= 6 && y > 6:
			assert.Equal(t, 2, label, "(%d, %d)", x, y)
		default:
			assert.Equal(t, 3, label, "(%d, %d)", x, y)
		}
	}
}
