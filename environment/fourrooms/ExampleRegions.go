package fourrooms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/graph"
)

// ExampleRegions labels the vertices of a Four Rooms transition graph
// with the four-region decomposition from the supplementary material
// of Solway et al. (2014), assigning one region per room with the
// doorway states attached as follows:
//
//	region 0: x < 6 and y <= 6        (bottom left)
//	region 1: x >= 6 and y <= 5       (bottom right)
//	region 2: x <= 6 and y > 6        (top left)
//	region 3: x > 6 and y > 5         (top right)
func ExampleRegions(g *graph.UndirectedGraph[mat.Vector]) (*graph.ConnectedComponents[mat.Vector], error) {
	labels := make([]int, g.VertexCount())

	for v := 0; v < g.VertexCount(); v++ {
		x, y := int(g.Vertex(v).AtVec(0)), int(g.Vertex(v).AtVec(1))

		switch {
		case x < 6 && y <= 6:
			labels[v] = 0
		case x >= 6 && y <= 5:
			labels[v] = 1
		case x <= 6 && y > 6:
			labels[v] = 2
		case x > 6 && y > 5:
			labels[v] = 3
		default:
			return nil, fmt.Errorf("exampleRegions: no region for vertex %d "+
				"at (%d, %d)", v, x, y)
		}
	}

	return graph.NewFromLabels(labels, g)
}
