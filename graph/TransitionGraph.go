package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/environment"
)

// NewTransitionGraph materializes the undirected state-transition
// graph G = (V, E) of a tabular environment:
//
//	V = the environment's valid states, in enumeration order
//	E = symmetric connections between all action-connected states
//
// Actions that leave a state unchanged add no edge, so the graph never
// contains self-loops.
func NewTransitionGraph(env environment.Tabular) (*UndirectedGraph[mat.Vector], error) {
	states := env.States()

	g, err := NewUndirectedGraph(states, nil)
	if err != nil {
		return nil, err
	}

	// Map state values to indices in the vertex list
	vertexOf := make(map[string]int, len(states))
	for i, s := range states {
		vertexOf[stateKey(s)] = i
	}

	for i, s := range states {
		for a := 0; a < env.Actions(); a++ {
			next := env.Transition(s, a)
			if mat.Equal(s, next) {
				continue // No self-connections
			}

			j, ok := vertexOf[stateKey(next)]
			if !ok {
				return nil, fmt.Errorf("transitionGraph: action %d at state %v "+
					"reaches unenumerated state %v", a, mat.Formatted(s.T()),
					mat.Formatted(next.T()))
			}

			if _, err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func stateKey(s mat.Vector) string {
	values := make([]float64, s.Len())
	for i := range values {
		values[i] = s.AtVec(i)
	}
	return fmt.Sprint(values)
}
