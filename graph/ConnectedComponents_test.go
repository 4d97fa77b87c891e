package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gohrl/graph"
)

func TestFindComponents(t *testing.T) {
	// Two chains and an isolated vertex
	g := newIndexGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {3, 4}})

	num, labels := graph.FindComponents(g)
	assert.Equal(t, 3, num)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, labels)
}

func TestNewConnectedComponents(t *testing.T) {
	// State space: a 4-cycle. Connectivity: the cycle with one edge
	// of each pair of opposite edges removed, leaving two chains.
	stateSpace := newIndexGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	connectivity := newIndexGraph(t, 4, [][2]int{{0, 1}, {2, 3}})

	c, err := graph.NewConnectedComponents(connectivity, stateSpace)
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumComponents())
	assert.Equal(t, []int{0, 0, 1, 1}, c.Labels())
	assert.Equal(t, 0, c.Label(1))
	assert.Equal(t, 1, c.Label(3))

	// Pruning removes exactly the region-crossing state-space edges
	assert.True(t, c.ShareEdge(0, 1))
	assert.True(t, c.ShareEdge(2, 3))
	assert.False(t, c.ShareEdge(1, 2))
	assert.False(t, c.ShareEdge(3, 0))
	assert.Equal(t, 4, c.Pruned().EdgeCount())
	assert.Equal(t, 8, c.StateSpace().EdgeCount())
}

func TestNewConnectedComponentsVertexMismatch(t *testing.T) {
	stateSpace := newIndexGraph(t, 4, nil)
	connectivity := newIndexGraph(t, 3, nil)

	_, err := graph.NewConnectedComponents(connectivity, stateSpace)
	require.Error(t, err)
	assert.True(t, graph.IsInvalidArgument(err))
}

func TestNewFromLabels(t *testing.T) {
	stateSpace := newIndexGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	c, err := graph.NewFromLabels([]int{0, 0, 1, 1}, stateSpace)
	require.NoError(t, err)
	assert.Equal(t, 2, c.NumComponents())
	assert.False(t, c.ShareEdge(1, 2))
}

func TestNewFromLabelsValidation(t *testing.T) {
	stateSpace := newIndexGraph(t, 3, nil)

	for name, labels := range map[string][]int{
		"wrong length":    {0, 0},
		"negative label":  {0, -1, 0},
		"empty component": {0, 2, 2},
	} {
		_, err := graph.NewFromLabels(labels, stateSpace)
		require.Error(t, err, name)
		assert.True(t, graph.IsInvalidArgument(err), name)
	}
}

func TestLabelsCopied(t *testing.T) {
	stateSpace := newIndexGraph(t, 2, [][2]int{{0, 1}})

	c, err := graph.NewFromLabels([]int{0, 0}, stateSpace)
	require.NoError(t, err)

	labels := c.Labels()
	labels[0] = 99
	assert.Equal(t, 0, c.Label(0))
}

func TestVertexIndices(t *testing.T) {
	stateSpace := newIndexGraph(t, 5, [][2]int{{0, 2}, {2, 4}, {1, 3}})

	c, err := graph.NewFromLabels([]int{0, 1, 0, 1, 0}, stateSpace)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, c.VertexIndices(0))
	assert.Equal(t, []int{1, 3}, c.VertexIndices(1))
}

func TestComponentSubgraphs(t *testing.T) {
	// Two interleaved chains: 0-2-4 and 1-3
	stateSpace := newIndexGraph(t, 5, [][2]int{{0, 2}, {2, 4}, {1, 3}})

	c, err := graph.NewFromLabels([]int{0, 1, 0, 1, 0}, stateSpace)
	require.NoError(t, err)

	subgraphs := c.ComponentSubgraphs()
	require.Len(t, subgraphs, 2)

	// Component 0 reindexes 0, 2, 4 to 0, 1, 2 keeping vertex data
	first := subgraphs[0]
	assert.Equal(t, 3, first.VertexCount())
	assert.Equal(t, []int{0, 2, 4}, first.Vertices())
	assert.True(t, first.HasEdge(0, 1))
	assert.True(t, first.HasEdge(1, 2))
	assert.False(t, first.HasEdge(0, 2))

	second := subgraphs[1]
	assert.Equal(t, 2, second.VertexCount())
	assert.Equal(t, []int{1, 3}, second.Vertices())
	assert.True(t, second.HasEdge(0, 1))
}
