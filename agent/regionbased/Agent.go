package regionbased

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gohrl/graph"
)

// optionKey identifies a subgoal option by the region it operates in
// and the exit vertex it drives toward
type optionKey struct {
	region  int
	subgoal int
}

// Agent is a hierarchical agent over a partitioned state space. A
// two-level policy hierarchy governs its behavior: a task-level policy
// selects among primitive actions and subgoal options, and the active
// option's internal policy selects primitive actions until the option
// terminates at its subgoal.
//
// The agent derives the entrance and exit states of every region once
// at construction and creates one SubgoalOption per (region, exit)
// pair. Options are never shared between agents: each agent owns fresh
// per-option constraint state.
type Agent struct {
	regions *graph.ConnectedComponents[mat.Vector]

	// options holds each region's subgoal options ordered by
	// ascending subgoal vertex
	options  [][]*SubgoalOption
	byKey    map[optionKey]*SubgoalOption
	entrance []map[int]struct{}
}

// New creates an agent over the given region partition of a state
// space
func New(regions *graph.ConnectedComponents[mat.Vector]) *Agent {
	a := &Agent{
		regions:  regions,
		options:  make([][]*SubgoalOption, regions.NumComponents()),
		byKey:    make(map[optionKey]*SubgoalOption),
		entrance: make([]map[int]struct{}, regions.NumComponents()),
	}

	numStates := regions.StateSpace().VertexCount()
	for region := 0; region < regions.NumComponents(); region++ {
		entrances := graph.EntranceStates(regions, region)

		a.entrance[region] = make(map[int]struct{}, len(entrances))
		for _, e := range entrances {
			a.entrance[region][e] = struct{}{}
		}

		// ExitStates returns ascending vertices, fixing the option
		// order within each region
		for _, exit := range graph.ExitStates(regions, region) {
			option := newSubgoalOption(region, exit, entrances, numStates)
			a.options[region] = append(a.options[region], option)
			a.byKey[optionKey{region: region, subgoal: exit}] = option
		}
	}

	return a
}

// Regions returns the region partition the agent was built over
func (a *Agent) Regions() *graph.ConnectedComponents[mat.Vector] {
	return a.regions
}

// Options returns the subgoal options of the given region, ordered by
// ascending subgoal vertex
func (a *Agent) Options(region int) []*SubgoalOption {
	return a.options[region]
}

// NumOptions returns the total number of subgoal options across all
// regions
func (a *Agent) NumOptions() int {
	total := 0
	for _, options := range a.options {
		total += len(options)
	}
	return total
}

// noSubgoal marks path indices with no active subgoal: the region
// label never changes over the remainder of the path
const noSubgoal = -1

// PossibleActions returns, for each transition along the given vertex
// path, the number of actions that would have been consistent with
// observing the agent continue from that vertex, under the agent's
// two-level policy hierarchy. The result has length len(path)-1.
//
// At each index the task-level policy is constrained if the index is
// the path's first, no subgoal is active, or an option just
// terminated; it then contributes the vertex's out-degree plus the
// number of options available there (options are available at the
// first vertex and at region entrances). The active option's internal
// policy contributes the out-degree alone, the first time that option
// is queried about that vertex. Unconstrained transitions contribute
// a factor of one.
//
// Querying consumes the per-option constraint flags, so repeated calls
// on one agent accumulate: a transition already counted under an
// option contributes no further information.
func (a *Agent) PossibleActions(path []int) ([]int, error) {
	if len(path) == 0 {
		return nil, &AgentError{Op: "possibleActions", Err: errInvalidArgument}
	}

	labels := a.regions.Labels()
	subgoals := a.assignSubgoals(path, labels)

	factors := make([]int, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		vertex := path[i]
		region := labels[vertex]
		degree := a.regions.StateSpace().Degree(vertex)

		taskConstrained := i == 0 || subgoals[i] == noSubgoal ||
			subgoals[i] != subgoals[i-1]

		optionConstrained := false
		if subgoals[i] != noSubgoal {
			option, ok := a.byKey[optionKey{region: region,
				subgoal: subgoals[i]}]
			if !ok {
				panic(fmt.Sprintf("possibleActions: no option drives "+
					"region %d to vertex %d", region, subgoals[i]))
			}
			optionConstrained = option.constrain(vertex)
		}

		factor := 1
		if taskConstrained {
			available := 0
			if _, entrance := a.entrance[region][vertex]; i == 0 || entrance {
				available = len(a.options[region])
			}
			factor *= degree + available
		}
		if optionConstrained {
			factor *= degree
		}
		factors[i] = factor
	}

	return factors, nil
}

// assignSubgoals computes the active subgoal at each path index: the
// next path vertex whose region label differs from the label at the
// index, or noSubgoal if the label never changes again
func (a *Agent) assignSubgoals(path []int, labels []int) []int {
	subgoals := make([]int, len(path))

	i := 0
	for i < len(path) {
		j := i + 1
		for j < len(path) && labels[path[j]] == labels[path[i]] {
			j++
		}

		target := noSubgoal
		if j < len(path) {
			target = path[j]
		}
		for k := i; k < j; k++ {
			subgoals[k] = target
		}
		i = j
	}

	return subgoals
}
