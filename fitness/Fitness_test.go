package fitness_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/agent/regionbased"
	"github.com/samuelfneumann/gohrl/environment/fourrooms"
	"github.com/samuelfneumann/gohrl/fitness"
	"github.com/samuelfneumann/gohrl/graph"
	"github.com/samuelfneumann/gohrl/planner"
)

func fourRoomsGraph(t *testing.T) *graph.UndirectedGraph[mat.Vector] {
	t.Helper()

	env, err := fourrooms.New(fourrooms.Cardinal)
	require.NoError(t, err)

	g, err := graph.NewTransitionGraph(env)
	require.NoError(t, err)
	return g
}

// chainAgent creates an agent over a 3-vertex chain with a single
// region
func chainAgent(t *testing.T) (*regionbased.Agent,
	*graph.UndirectedGraph[mat.Vector]) {
	t.Helper()

	vertices := []mat.Vector{
		mat.NewVecDense(2, []float64{0, 0}),
		mat.NewVecDense(2, []float64{1, 0}),
		mat.NewVecDense(2, []float64{2, 0}),
	}
	g, err := graph.NewUndirectedGraph(vertices, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	regions, err := graph.NewFromLabels([]int{0, 0, 0}, g)
	require.NoError(t, err)

	return regionbased.New(regions), g
}

func TestEncode(t *testing.T) {
	g := fourRoomsGraph(t)
	rng := rand.New(rand.NewSource(5))

	regions, err := graph.Decompose(4, g, rng)
	require.NoError(t, err)

	bits := fitness.Encode(regionbased.New(regions))
	require.Len(t, bits, g.EdgeCount())

	ones := 0
	for _, bit := range bits {
		require.Contains(t, []int{0, 1}, bit)
		ones += bit
	}
	// Set bits are exactly the adjacency entries surviving pruning
	assert.Equal(t, regions.Pruned().EdgeCount(), ones)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := fourRoomsGraph(t)
	rng := rand.New(rand.NewSource(19))

	regions, err := graph.Decompose(4, g, rng)
	require.NoError(t, err)
	agent := regionbased.New(regions)

	decoded, err := fitness.Decode(fitness.Encode(agent), g)
	require.NoError(t, err)

	assert.Equal(t, regions.Labels(), decoded.Regions().Labels())
	assert.Equal(t, agent.NumOptions(), decoded.NumOptions())
}

func TestDecodeBadLength(t *testing.T) {
	_, g := chainAgent(t)

	_, err := fitness.Decode([]int{1, 0}, g)
	assert.Error(t, err)
}

func TestLogModelEvidence(t *testing.T) {
	agent, _ := chainAgent(t)

	behaviors := []planner.Behavior{{
		Task: planner.Task{Start: 0, Goal: 2},
		Path: []int{0, 1, 2},
	}}

	// Branching factors along the chain are [1, 2], so the evidence
	// is -(log 1 + log 2)
	evidence, err := fitness.LogModelEvidence(agent, behaviors)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(2), evidence, 1e-12)
}

func TestLogModelEvidenceEmptyPath(t *testing.T) {
	agent, _ := chainAgent(t)

	_, err := fitness.LogModelEvidence(agent, []planner.Behavior{{}})
	require.Error(t, err)
	assert.True(t, regionbased.IsInvalidArgument(err))
}

func TestEvaluator(t *testing.T) {
	agent, g := chainAgent(t)

	behaviors := []planner.Behavior{{
		Task: planner.Task{Start: 0, Goal: 2},
		Path: []int{0, 1, 2},
	}}

	evaluator := fitness.NewEvaluator(g, behaviors)
	assert.Equal(t, g.EdgeCount(), evaluator.Bits())

	// The all-ones encoding reproduces the single-region partition
	score, err := evaluator.Fitness(fitness.Encode(agent))
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(2), score, 1e-12)

	// Fitness decodes a fresh agent each call, so scores repeat
	again, err := evaluator.Fitness(fitness.Encode(agent))
	require.NoError(t, err)
	assert.Equal(t, score, again)
}

func TestEvaluatorOnFourRooms(t *testing.T) {
	g := fourRoomsGraph(t)
	rng := rand.New(rand.NewSource(23))

	regions, err := graph.Decompose(4, g, rng)
	require.NoError(t, err)
	agent := regionbased.New(regions)

	behaviors := planner.GenerateOptimalBehaviors(g, nil)
	require.Len(t, behaviors, g.VertexCount()*(g.VertexCount()-1))

	evidence, err := fitness.LogModelEvidence(agent, behaviors)
	require.NoError(t, err)
	assert.Less(t, evidence, 0.0)

	// The evaluator scores the encoded partition identically
	evaluator := fitness.NewEvaluator(g, behaviors)
	score, err := evaluator.Fitness(fitness.Encode(agent))
	require.NoError(t, err)
	assert.InDelta(t, evidence, score, 1e-9)
}
