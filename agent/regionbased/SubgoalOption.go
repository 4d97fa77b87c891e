// Package regionbased implements a hierarchical agent whose options
// navigate between the regions of a partitioned state space, after the
// hierarchically optimal behavioral model of Solway et al. (2014).
package regionbased

import (
	"fmt"

	"github.com/samuelfneumann/gohrl/agent"
)

// SubgoalOption implements agent.DeterministicOption
var _ agent.DeterministicOption = (*SubgoalOption)(nil)

// SubgoalOption is an option that drives the agent from one region of
// the state space to a single exit vertex of that region. Its
// initiation set is the region's entrance states, and it terminates
// exactly at its subgoal.
//
// Each option tracks, per state, whether its internal policy has
// already been counted as constrained in that state. The flag is set
// permanently the first time the option is queried about a state, so
// repeated traversals through the same state under the same option
// contribute no further information.
type SubgoalOption struct {
	region  int
	subgoal int

	entrances   map[int]struct{}
	constrained []bool
}

// newSubgoalOption creates an option over a state space of numStates
// vertices that drives the agent from the given region to the given
// subgoal vertex
func newSubgoalOption(region, subgoal int, entrances []int,
	numStates int) *SubgoalOption {
	entranceSet := make(map[int]struct{}, len(entrances))
	for _, e := range entrances {
		entranceSet[e] = struct{}{}
	}

	return &SubgoalOption{
		region:      region,
		subgoal:     subgoal,
		entrances:   entranceSet,
		constrained: make([]bool, numStates),
	}
}

// Region returns the region the option operates in
func (s *SubgoalOption) Region() int {
	return s.region
}

// Subgoal returns the vertex the option drives the agent toward
func (s *SubgoalOption) Subgoal() int {
	return s.subgoal
}

// CanInitiate returns whether the option may be invoked in the given
// state. Subgoal options initiate at the entrance states of their
// region.
func (s *SubgoalOption) CanInitiate(state int) bool {
	_, ok := s.entrances[state]
	return ok
}

// Pi returns the primitive action the option takes in the given
// state. Subgoal options carry no authoritative internal policy, so
// Pi always returns -1; the behavioral model only requires counting
// the actions an optimal internal policy could take.
func (s *SubgoalOption) Pi(state int) int {
	return -1
}

// TerminatesAt returns whether the option terminates upon reaching
// the given state
func (s *SubgoalOption) TerminatesAt(state int) bool {
	return state == s.subgoal
}

// constrain marks the option's internal policy as having been counted
// in the given state and reports whether this is the first such count
func (s *SubgoalOption) constrain(state int) bool {
	if s.constrained[state] {
		return false
	}
	s.constrained[state] = true
	return true
}

func (s *SubgoalOption) String() string {
	return fmt.Sprintf("SubgoalOption | Region: %d | Subgoal: %d", s.region,
		s.subgoal)
}
