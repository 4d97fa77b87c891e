package fitness

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/graph"
	"github.com/samuelfneumann/gohrl/planner"
)

// Evaluator scores genetic encodings of region partitions against a
// fixed behavior dataset. It caches the state space and the dataset so
// a genetic algorithm can call Fitness once per candidate without
// re-planning.
type Evaluator struct {
	stateSpace *graph.UndirectedGraph[mat.Vector]
	behaviors  []planner.Behavior
}

// NewEvaluator creates an evaluator over the given state space and
// behavior dataset. The state space is copied, so later mutation by
// the caller cannot invalidate cached encodings.
func NewEvaluator(stateSpace *graph.UndirectedGraph[mat.Vector],
	behaviors []planner.Behavior) *Evaluator {
	return &Evaluator{
		stateSpace: stateSpace.Clone(),
		behaviors:  behaviors,
	}
}

// Bits returns the length of the genetic encodings the evaluator
// scores: the number of global edge indices of its state space
func (e *Evaluator) Bits() int {
	return e.stateSpace.EdgeCount()
}

// Fitness decodes the given encoding into a fresh agent and returns
// the log model evidence of that agent's hierarchy over the cached
// behavior dataset
func (e *Evaluator) Fitness(bits []int) (float64, error) {
	agent, err := Decode(bits, e.stateSpace)
	if err != nil {
		return 0, err
	}
	return LogModelEvidence(agent, e.behaviors)
}
