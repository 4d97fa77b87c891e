// Package graph implements the undirected graph machinery used to
// partition state-transition graphs into regions
package graph

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// UndirectedGraph is a generic undirected graph composed of vertices
// holding data of type T and bidirectional edges stored as adjacency
// sets. Vertex i's data is accessed with Vertex(i), and edges are
// always symmetric: j is adjacent to i if and only if i is adjacent
// to j.
type UndirectedGraph[T any] struct {
	vertices []T
	adjacent []map[int]struct{}
}

// NewUndirectedGraph creates an undirected graph from a list of vertex
// data and a list of (i, j) vertex connections. Every edge (i, j) is
// added in both directions. Edge endpoints must index into vertices.
func NewUndirectedGraph[T any](vertices []T, edges [][2]int) (*UndirectedGraph[T], error) {
	g := &UndirectedGraph[T]{
		vertices: append([]T(nil), vertices...),
		adjacent: make([]map[int]struct{}, len(vertices)),
	}
	for i := range g.adjacent {
		g.adjacent[i] = make(map[int]struct{})
	}

	for _, edge := range edges {
		if _, err := g.AddEdge(edge[0], edge[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddVertex appends a vertex with no edges and returns its index
func (g *UndirectedGraph[T]) AddVertex(data T) int {
	g.vertices = append(g.vertices, data)
	g.adjacent = append(g.adjacent, make(map[int]struct{}))
	return len(g.vertices) - 1
}

// AddEdge adds the undirected edge (i, j) to the graph, returning the
// number of directed entries added: 2 for a new edge, 1 for a new
// self-loop, and 0 if the edge already exists.
func (g *UndirectedGraph[T]) AddEdge(i, j int) (int, error) {
	if err := g.checkVertex("addEdge", i); err != nil {
		return 0, err
	}
	if err := g.checkVertex("addEdge", j); err != nil {
		return 0, err
	}

	if _, ok := g.adjacent[i][j]; ok {
		return 0, nil
	}

	g.adjacent[i][j] = struct{}{}
	if i == j {
		return 1, nil
	}
	g.adjacent[j][i] = struct{}{}
	return 2, nil
}

// RemoveEdge removes the undirected edge (i, j) from the graph,
// deleting both directions. The edge must exist.
func (g *UndirectedGraph[T]) RemoveEdge(i, j int) error {
	if err := g.checkVertex("removeEdge", i); err != nil {
		return err
	}
	if err := g.checkVertex("removeEdge", j); err != nil {
		return err
	}

	if _, ok := g.adjacent[i][j]; !ok {
		return &GraphError{
			Op:  "removeEdge",
			Err: fmt.Errorf("no edge (%d, %d): %w", i, j, errEdgeNotFound),
		}
	}

	delete(g.adjacent[i], j)
	delete(g.adjacent[j], i)
	return nil
}

// HasEdge returns whether the undirected edge (i, j) exists
func (g *UndirectedGraph[T]) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adjacent) {
		return false
	}
	_, ok := g.adjacent[i][j]
	return ok
}

// VertexCount returns the number of vertices in the graph
func (g *UndirectedGraph[T]) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the total size of all adjacency sets. Each
// undirected edge contributes 2, except self-loops which contribute 1.
func (g *UndirectedGraph[T]) EdgeCount() int {
	count := 0
	for _, adj := range g.adjacent {
		count += len(adj)
	}
	return count
}

// Vertex returns the data stored at vertex i
func (g *UndirectedGraph[T]) Vertex(i int) T {
	return g.vertices[i]
}

// Vertices returns a copy of the vertex data list
func (g *UndirectedGraph[T]) Vertices() []T {
	return append([]T(nil), g.vertices...)
}

// Degree returns the number of neighbors of vertex u
func (g *UndirectedGraph[T]) Degree(u int) int {
	return len(g.adjacent[u])
}

// Neighbors returns the neighbors of vertex u in ascending order
func (g *UndirectedGraph[T]) Neighbors(u int) []int {
	neighbors := make([]int, 0, len(g.adjacent[u]))
	for v := range g.adjacent[u] {
		neighbors = append(neighbors, v)
	}
	sort.Ints(neighbors)
	return neighbors
}

// EdgeFromIndex treats all directed adjacency entries as a single
// globally ordered sequence - for each vertex in ascending index
// order, its neighbors in ascending order occupy a contiguous block -
// and returns the (vertex, neighbor) pair at global index k. The order
// is deterministic given the adjacency sets, which SampleEdge relies
// on for uniform edge sampling.
func (g *UndirectedGraph[T]) EdgeFromIndex(k int) (int, int, error) {
	if k < 0 || k >= g.EdgeCount() {
		return 0, 0, &GraphError{
			Op: "edgeFromIndex",
			Err: fmt.Errorf("edge index %d out of range [0, %d): %w",
				k, g.EdgeCount(), errInvalidArgument),
		}
	}

	for i := range g.adjacent {
		degree := len(g.adjacent[i])
		if k < degree {
			return i, g.Neighbors(i)[k], nil
		}
		k -= degree
	}

	// Unreachable: k was validated against EdgeCount above
	panic(fmt.Sprintf("edgeFromIndex: edge index %d beyond all adjacency sets", k))
}

// SampleEdge returns a uniformly random edge of the graph as a
// (vertex, neighbor) pair. Both orientations of an edge occupy a slot
// in the global edge sequence, so each undirected edge is returned
// with equal probability.
func (g *UndirectedGraph[T]) SampleEdge(rng *rand.Rand) (int, int, error) {
	if g.EdgeCount() == 0 {
		return 0, 0, &GraphError{
			Op:  "sampleEdge",
			Err: fmt.Errorf("graph has no edges: %w", errInvalidArgument),
		}
	}
	return g.EdgeFromIndex(rng.Intn(g.EdgeCount()))
}

// RandomNeighbor returns a uniformly random neighbor of vertex u
func (g *UndirectedGraph[T]) RandomNeighbor(u int, rng *rand.Rand) (int, error) {
	if err := g.checkVertex("randomNeighbor", u); err != nil {
		return 0, err
	}
	if len(g.adjacent[u]) == 0 {
		return 0, &GraphError{
			Op:  "randomNeighbor",
			Err: fmt.Errorf("vertex %d has no neighbors: %w", u, errInvalidArgument),
		}
	}

	neighbors := g.Neighbors(u)
	return neighbors[rng.Intn(len(neighbors))], nil
}

// Clone returns a deep copy of the graph. The copy shares no mutable
// state with the original, so partitions built from clones stay valid
// when the original is later modified.
func (g *UndirectedGraph[T]) Clone() *UndirectedGraph[T] {
	clone := &UndirectedGraph[T]{
		vertices: append([]T(nil), g.vertices...),
		adjacent: make([]map[int]struct{}, len(g.adjacent)),
	}
	for i, adj := range g.adjacent {
		clone.adjacent[i] = make(map[int]struct{}, len(adj))
		for v := range adj {
			clone.adjacent[i][v] = struct{}{}
		}
	}
	return clone
}

func (g *UndirectedGraph[T]) String() string {
	return fmt.Sprintf("UndirectedGraph | Vertices: %d  |  Edges: %d",
		g.VertexCount(), g.EdgeCount())
}

func (g *UndirectedGraph[T]) checkVertex(op string, i int) error {
	if i < 0 || i >= len(g.vertices) {
		return &GraphError{
			Op: op,
			Err: fmt.Errorf("vertex %d out of range [0, %d): %w",
				i, len(g.vertices), errInvalidArgument),
		}
	}
	return nil
}
