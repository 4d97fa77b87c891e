package graph

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// UniformSpanningTree computes a spanning tree of the given connected
// graph chosen uniformly at random among all of its spanning trees,
// using Wilson's loop-erased random walk algorithm.
//
// A uniformly random root is marked in-tree; then, for each vertex of
// a random permutation, a random walk is performed until it hits the
// tree, recording the successor of every visited vertex and
// overwriting stale successors whenever the walk revisits a vertex
// (which is what erases loops). The walk is then retraced from its
// start, adding each (vertex, successor) edge to the tree.
//
// The result always has exactly |V| - 1 undirected edges and is
// connected; a violation indicates a logic bug and panics.
func UniformSpanningTree[T any](g *UndirectedGraph[T],
	rng *rand.Rand) (*UndirectedGraph[T], error) {
	if g.VertexCount() == 0 {
		return nil, &GraphError{
			Op:  "uniformSpanningTree",
			Err: fmt.Errorf("graph has no vertices: %w", errInvalidArgument),
		}
	}
	// Random walks from an unreachable component would never hit the
	// tree
	if !IsConnected(g) {
		return nil, &GraphError{
			Op:  "uniformSpanningTree",
			Err: fmt.Errorf("graph is disconnected: %w", errInvalidArgument),
		}
	}

	// Begin with an empty tree over the same vertex data
	tree, err := NewUndirectedGraph(g.Vertices(), nil)
	if err != nil {
		return nil, err
	}

	inTree := make([]bool, g.VertexCount())
	root := rng.Intn(g.VertexCount())
	inTree[root] = true
	remaining := g.VertexCount() - 1

	// next[u] tracks the successor of u during random walks back to
	// the tree; -1 means "not initialized"
	next := make([]int, g.VertexCount())
	for i := range next {
		next[i] = -1
	}

	for _, i := range rng.Perm(g.VertexCount()) {
		// Random walk from i until a vertex already in the tree
		u := i
		for !inTree[u] {
			neighbor, err := g.RandomNeighbor(u, rng)
			if err != nil {
				return nil, &GraphError{
					Op:  "uniformSpanningTree",
					Err: fmt.Errorf("walk stranded at vertex %d: %w", u, err),
				}
			}
			next[u] = neighbor
			u = next[u]
		}

		// Retrace the walk and add it to the tree
		u = i
		for !inTree[u] {
			added, err := tree.AddEdge(u, next[u])
			if err != nil {
				return nil, err
			}
			if added != 2 {
				panic(fmt.Sprintf("uniformSpanningTree: adding edge (%d, %d) "+
					"added %d entries, expected 2", u, next[u], added))
			}

			inTree[u] = true
			remaining--
			u = next[u]
		}

		if remaining == 0 {
			break
		}
	}

	if remaining != 0 {
		panic(fmt.Sprintf("uniformSpanningTree: %d vertices never joined the tree",
			remaining))
	}
	if tree.EdgeCount() != 2*(g.VertexCount()-1) {
		panic(fmt.Sprintf("uniformSpanningTree: tree has %d adjacency entries, "+
			"expected %d", tree.EdgeCount(), 2*(g.VertexCount()-1)))
	}

	return tree, nil
}

// Decompose partitions the given connected graph into n connected
// regions chosen at random: a uniform spanning tree is computed, n - 1
// uniformly sampled tree edges are cut, and the components of the
// resulting forest are recomputed. n must lie in [1, |V|].
//
// The returned ConnectedComponents is labeled by the forest but backed
// by the caller's original graph, so entrance and exit computations
// see the full topology. Cutting a tree edge always increases the
// component count by exactly one, so ending with anything other than n
// components is a logic bug and panics.
func Decompose[T any](n int, g *UndirectedGraph[T],
	rng *rand.Rand) (*ConnectedComponents[T], error) {
	if n < 1 || n > g.VertexCount() {
		return nil, &GraphError{
			Op: "decompose",
			Err: fmt.Errorf("%d is an invalid number of components for %d "+
				"vertices: %w", n, g.VertexCount(), errInvalidArgument),
		}
	}

	tree, err := UniformSpanningTree(g, rng)
	if err != nil {
		return nil, err
	}

	for cut := 0; cut < n-1; cut++ {
		i, j, err := tree.SampleEdge(rng)
		if err != nil {
			return nil, err
		}
		if err := tree.RemoveEdge(i, j); err != nil {
			return nil, err
		}
	}

	components, err := NewConnectedComponents(tree, g)
	if err != nil {
		return nil, err
	}

	if components.NumComponents() != n {
		panic(fmt.Sprintf("decompose: cutting %d tree edges produced %d "+
			"components, expected %d", n-1, components.NumComponents(), n))
	}

	return components, nil
}
