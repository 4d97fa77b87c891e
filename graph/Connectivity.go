package graph

// IsConnected returns whether every vertex of the graph is reachable
// from vertex 0. The empty graph is considered connected.
func IsConnected[T any](g *UndirectedGraph[T]) bool {
	if g.VertexCount() == 0 {
		return true
	}

	marked := make([]bool, g.VertexCount())

	unexplored := []int{0}
	for len(unexplored) > 0 {
		u := unexplored[len(unexplored)-1]
		unexplored = unexplored[:len(unexplored)-1]

		// Don't revisit vertices, or cycles would recurse forever
		if !marked[u] {
			marked[u] = true
			unexplored = append(unexplored, g.Neighbors(u)...)
		}
	}

	for _, m := range marked {
		if !m {
			return false
		}
	}
	return true
}
