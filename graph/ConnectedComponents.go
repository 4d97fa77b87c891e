package graph

import "fmt"

// ConnectedComponents stores a labeling of a state-space graph's
// vertices into connected regions, together with a "pruned" copy of
// the state space from which all region-crossing edges have been
// removed.
//
// The labeling itself is computed on a connectivity graph (for
// example, a spanning forest produced by Decompose), which must share
// the state space's vertex set. Entrance and exit computations use the
// full, unpruned state-space topology; edge-membership queries use the
// pruned graph.
//
// A ConnectedComponents privately copies the graphs it is built from,
// so later mutation of the caller's graphs cannot invalidate the
// labels.
type ConnectedComponents[T any] struct {
	stateSpace    *UndirectedGraph[T]
	pruned        *UndirectedGraph[T]
	numComponents int
	labels        []int
}

// NewConnectedComponents computes the connected components of the
// given connectivity graph and wraps them over the given state space.
// The two graphs must have the same vertex count.
func NewConnectedComponents[T any](connectivity,
	stateSpace *UndirectedGraph[T]) (*ConnectedComponents[T], error) {
	if connectivity.VertexCount() != stateSpace.VertexCount() {
		return nil, &GraphError{
			Op: "connectedComponents",
			Err: fmt.Errorf("connectivity has %d vertices but state space has %d: %w",
				connectivity.VertexCount(), stateSpace.VertexCount(),
				errInvalidArgument),
		}
	}

	numComponents, labels := FindComponents(connectivity)

	c := &ConnectedComponents[T]{
		stateSpace:    stateSpace.Clone(),
		numComponents: numComponents,
		labels:        labels,
	}
	c.resetEdges()
	return c, nil
}

// NewFromLabels wraps an explicit vertex labeling over the given state
// space. Labels must cover every vertex with contiguous component ids
// 0, ..., N-1 and no empty component.
func NewFromLabels[T any](labels []int,
	stateSpace *UndirectedGraph[T]) (*ConnectedComponents[T], error) {
	if len(labels) != stateSpace.VertexCount() {
		return nil, &GraphError{
			Op: "connectedComponents",
			Err: fmt.Errorf("got %d labels for %d vertices: %w",
				len(labels), stateSpace.VertexCount(), errInvalidArgument),
		}
	}

	max := -1
	for _, label := range labels {
		if label < 0 {
			return nil, &GraphError{
				Op:  "connectedComponents",
				Err: fmt.Errorf("negative component label %d: %w", label, errInvalidArgument),
			}
		}
		if label > max {
			max = label
		}
	}

	counts := make([]int, max+1)
	for _, label := range labels {
		counts[label]++
	}
	for label, count := range counts {
		if count == 0 {
			return nil, &GraphError{
				Op:  "connectedComponents",
				Err: fmt.Errorf("component %d is empty: %w", label, errInvalidArgument),
			}
		}
	}

	c := &ConnectedComponents[T]{
		stateSpace:    stateSpace.Clone(),
		numComponents: max + 1,
		labels:        append([]int(nil), labels...),
	}
	c.resetEdges()
	return c, nil
}

// FindComponents finds the connected components of the given
// undirected graph using an iterative depth-first search, assigning a
// new component id whenever an unlabeled vertex is reached in
// ascending index order. Returns the number of components and the
// component label of each vertex, with labels ranging over 0 to N-1.
//
// Reference: "CountAndLabel", chapter 5.6 of Algorithms
// (Erickson, 2019).
func FindComponents[T any](g *UndirectedGraph[T]) (int, []int) {
	labels := make([]int, g.VertexCount())
	for i := range labels {
		labels[i] = -1 // Not yet included in any component
	}

	componentNum := -1
	for v := 0; v < g.VertexCount(); v++ {
		if labels[v] != -1 {
			continue
		}
		componentNum++ // Unlabeled vertex; new component

		// Flood the component with an explicit stack instead of
		// recursion so large graphs cannot exhaust the call stack.
		unexplored := []int{v}
		for len(unexplored) > 0 {
			u := unexplored[len(unexplored)-1]
			unexplored = unexplored[:len(unexplored)-1]

			if labels[u] == -1 {
				labels[u] = componentNum
				unexplored = append(unexplored, g.Neighbors(u)...)
			}
		}
	}

	for v, label := range labels {
		if label == -1 {
			panic(fmt.Sprintf("findComponents: vertex %d was never labeled", v))
		}
	}

	return componentNum + 1, labels
}

// resetEdges rebuilds the pruned graph: a copy of the state space
// containing only the edges whose endpoints share a component label.
func (c *ConnectedComponents[T]) resetEdges() {
	pruned, err := NewUndirectedGraph(c.stateSpace.Vertices(), nil)
	if err != nil {
		panic(fmt.Sprintf("resetEdges: %v", err))
	}

	for i := 0; i < c.stateSpace.VertexCount(); i++ {
		for _, j := range c.stateSpace.Neighbors(i) {
			if c.labels[i] == c.labels[j] {
				if _, err := pruned.AddEdge(i, j); err != nil {
					panic(fmt.Sprintf("resetEdges: %v", err))
				}
			}
		}
	}
	c.pruned = pruned
}

// NumComponents returns the number of connected components
func (c *ConnectedComponents[T]) NumComponents() int {
	return c.numComponents
}

// Label returns the component label of vertex v
func (c *ConnectedComponents[T]) Label(v int) int {
	return c.labels[v]
}

// Labels returns a copy of the component label of every vertex
func (c *ConnectedComponents[T]) Labels() []int {
	return append([]int(nil), c.labels...)
}

// ShareEdge returns whether (i, j) is an edge of the state space whose
// endpoints lie in the same component, that is, whether the edge
// survives in the region-pruned graph.
func (c *ConnectedComponents[T]) ShareEdge(i, j int) bool {
	return c.pruned.HasEdge(i, j)
}

// StateSpace returns the full, unpruned state-space graph backing the
// components. The returned graph is owned by the ConnectedComponents
// and must not be modified.
func (c *ConnectedComponents[T]) StateSpace() *UndirectedGraph[T] {
	return c.stateSpace
}

// Pruned returns the state-space graph with all region-crossing edges
// removed. The returned graph is owned by the ConnectedComponents and
// must not be modified.
func (c *ConnectedComponents[T]) Pruned() *UndirectedGraph[T] {
	return c.pruned
}

// VertexIndices returns the state-space vertex indices belonging to
// the given component, in ascending order.
func (c *ConnectedComponents[T]) VertexIndices(componentID int) []int {
	var indices []int
	for v, label := range c.labels {
		if label == componentID {
			indices = append(indices, v)
		}
	}
	return indices
}

// ComponentSubgraphs exports each connected component as a separate
// graph. Component vertices keep their relative order, and all
// internal edges are reindexed to the new local vertex indices.
func (c *ConnectedComponents[T]) ComponentSubgraphs() []*UndirectedGraph[T] {
	components := make([]*UndirectedGraph[T], c.numComponents)

	for id := 0; id < c.numComponents; id++ {
		indices := c.VertexIndices(id)

		localIndex := make(map[int]int, len(indices))
		vertices := make([]T, len(indices))
		for local, global := range indices {
			localIndex[global] = local
			vertices[local] = c.pruned.Vertex(global)
		}

		component, err := NewUndirectedGraph(vertices, nil)
		if err != nil {
			panic(fmt.Sprintf("componentSubgraphs: %v", err))
		}

		for local, global := range indices {
			for _, u := range c.pruned.Neighbors(global) {
				uLocal, ok := localIndex[u]
				if !ok {
					panic(fmt.Sprintf("componentSubgraphs: pruned neighbor %d of "+
						"vertex %d escapes component %d", u, global, id))
				}
				if _, err := component.AddEdge(local, uLocal); err != nil {
					panic(fmt.Sprintf("componentSubgraphs: %v", err))
				}
			}
		}
		components[id] = component
	}

	return components
}
