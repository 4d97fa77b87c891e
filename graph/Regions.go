package graph

// Entrance and exit states of state-space regions, following the
// macro-action construction of Hauskrecht et al. (1998): for a region
// S of the state-transition graph,
//
//	Entrances(S) = { s in S that can be transitioned into from outside S }
//	Exits(S)     = { s outside S that can be transitioned into from S }
//
// Both are computed against the full, unpruned state-space topology,
// never the pruned one - a region's doorways are exactly the edges
// that pruning removes.

// EntranceStates returns the entrance states of the given region, in
// ascending vertex-index order.
func EntranceStates[T any](regions *ConnectedComponents[T], regionID int) []int {
	stateSpace := regions.StateSpace()

	var entrances []int
	for _, v := range regions.VertexIndices(regionID) {
		for _, n := range stateSpace.Neighbors(v) {
			if regions.Label(n) != regionID {
				// Reachable from outside the region
				entrances = append(entrances, v)
				break
			}
		}
	}
	return entrances
}

// ExitStates returns the exit states of the given region, in ascending
// vertex-index order.
func ExitStates[T any](regions *ConnectedComponents[T], regionID int) []int {
	stateSpace := regions.StateSpace()

	var exits []int
	for v := 0; v < stateSpace.VertexCount(); v++ {
		if regions.Label(v) == regionID {
			continue
		}
		for _, n := range stateSpace.Neighbors(v) {
			if regions.Label(n) == regionID {
				// The region can transition into this outside vertex
				exits = append(exits, v)
				break
			}
		}
	}
	return exits
}
