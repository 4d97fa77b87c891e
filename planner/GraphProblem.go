package planner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/graph"
	"github.com/samuelfneumann/gohrl/utils/floatutils"
)

// GraphProblem adapts a state-transition graph over vector-valued
// states to the Problem interface. Search states are vertex indices;
// edge costs and the heuristic are Euclidean distances between the
// vectors the vertices hold, so the heuristic is admissible whenever
// single-step moves never shrink straight-line distance by more than
// their cost.
type GraphProblem struct {
	graph *graph.UndirectedGraph[mat.Vector]
}

// NewGraphProblem creates a shortest-path problem over the vertices of
// the given state-transition graph
func NewGraphProblem(g *graph.UndirectedGraph[mat.Vector]) *GraphProblem {
	return &GraphProblem{graph: g}
}

// Neighbors returns the vertices adjacent to v, in ascending order
func (g *GraphProblem) Neighbors(v int) []int {
	return g.graph.Neighbors(v)
}

// Cost returns the Euclidean distance between the states at vertices
// v1 and v2
func (g *GraphProblem) Cost(v1, v2 int) float64 {
	return floats.Distance(g.values(v1), g.values(v2), 2)
}

// Heuristic returns the Euclidean distance from the state at vertex v
// to the nearest goal vertex
func (g *GraphProblem) Heuristic(v int, goals []int) float64 {
	distances := make([]float64, len(goals))
	for i, goal := range goals {
		distances[i] = floats.Distance(g.values(v), g.values(goal), 2)
	}
	return floatutils.Min(distances...)
}

// values returns the raw state values at vertex v
func (g *GraphProblem) values(v int) []float64 {
	state := g.graph.Vertex(v)
	values := make([]float64, state.Len())
	for i := range values {
		values[i] = state.AtVec(i)
	}
	return values
}
