// Package fitness implements the genetic encoding of region
// partitions and their fitness under the log model evidence of a
// behavior dataset
package fitness

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/agent/regionbased"
	"github.com/samuelfneumann/gohrl/graph"
)

// Encode returns the genetic encoding of an agent's region partition:
// one bit per global edge index of the agent's state space, set to 1
// exactly when the edge survives region pruning. Both orientations of
// every edge carry a bit, following the global edge order of
// EdgeFromIndex.
func Encode(agent *regionbased.Agent) []int {
	regions := agent.Regions()
	stateSpace := regions.StateSpace()

	bits := make([]int, stateSpace.EdgeCount())
	k := 0
	for u := 0; u < stateSpace.VertexCount(); u++ {
		for _, v := range stateSpace.Neighbors(u) {
			if regions.ShareEdge(u, v) {
				bits[k] = 1
			}
			k++
		}
	}

	if k != len(bits) {
		panic(fmt.Sprintf("encode: enumerated %d edges of %d", k, len(bits)))
	}
	return bits
}

// Decode inverts Encode: it reconstructs the region partition whose
// surviving edges are the set bits of the encoding and returns a fresh
// agent over that partition. The encoding must have exactly one bit
// per global edge index of the given state space.
func Decode(bits []int,
	stateSpace *graph.UndirectedGraph[mat.Vector]) (*regionbased.Agent, error) {
	if len(bits) != stateSpace.EdgeCount() {
		return nil, fmt.Errorf("decode: got %d bits for a state space with "+
			"%d edge indices", len(bits), stateSpace.EdgeCount())
	}

	connectivity, err := graph.NewUndirectedGraph(stateSpace.Vertices(), nil)
	if err != nil {
		return nil, fmt.Errorf("decode: %v", err)
	}

	k := 0
	for u := 0; u < stateSpace.VertexCount(); u++ {
		for _, v := range stateSpace.Neighbors(u) {
			if bits[k] == 1 {
				if _, err := connectivity.AddEdge(u, v); err != nil {
					return nil, fmt.Errorf("decode: %v", err)
				}
			}
			k++
		}
	}

	regions, err := graph.NewConnectedComponents(connectivity, stateSpace)
	if err != nil {
		return nil, fmt.Errorf("decode: %v", err)
	}

	return regionbased.New(regions), nil
}
