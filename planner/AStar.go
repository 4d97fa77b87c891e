// Package planner implements A* search over generic state spaces and
// the generation of optimal ground-truth behaviors from
// state-transition graphs
package planner

import "sort"

// Problem defines a shortest-path search problem over states of type
// S. Implementations supply the successor relation, non-negative edge
// costs, and an admissible (optimistic) heuristic; the Search supplies
// the bookkeeping.
type Problem[S comparable] interface {
	// Neighbors returns the states reachable from s in one step
	Neighbors(s S) []S

	// Cost returns the non-negative cost of moving from s1 to its
	// neighbor s2
	Cost(s1, s2 S) float64

	// Heuristic estimates the cost-to-go from s to the nearest of
	// the goal states. The estimate must never exceed the true
	// cost, or paths returned by the search may be suboptimal.
	Heuristic(s S, goals []S) float64
}

// Node is a search node: a state together with its cost-to-reach g,
// its estimated total path cost f = g + h, and a parent pointer used
// to rebuild the path once a goal is reached.
type Node[S comparable] struct {
	State S
	G     float64
	F     float64
	prev  *Node[S]
}

// Search runs A* over a Problem. A Search owns an open list of nodes
// not yet expanded and a closed set of expanded states; both are
// reinitialized by Reset, which Plan calls on entry.
type Search[S comparable] struct {
	problem Problem[S]
	open    []*Node[S]
	closed  map[S]bool
	goals   []S
}

// NewSearch creates an A* search over the given problem
func NewSearch[S comparable](problem Problem[S]) *Search[S] {
	return &Search[S]{
		problem: problem,
		closed:  make(map[S]bool),
	}
}

// Reset sets up the search for a new planning problem. The open list
// begins as {s0} and the closed set begins empty.
func (s *Search[S]) Reset(s0 S, goals []S) {
	s.goals = append([]S(nil), goals...)
	s.open = []*Node[S]{{State: s0, F: s.problem.Heuristic(s0, s.goals)}}
	s.closed = make(map[S]bool)
}

// Plan runs A* search from s0 to the nearest state in goals and
// returns the optimal state path, beginning with s0 and ending with
// the reached goal. An empty path signals that no goal is reachable;
// search failure is not an error.
func (s *Search[S]) Plan(s0 S, goals []S) []S {
	s.Reset(s0, goals)

	goalSet := make(map[S]bool, len(goals))
	for _, g := range goals {
		goalSet[g] = true
	}

	for len(s.open) > 0 {
		// Pop the minimum-f node. The sort is stable so ties break
		// deterministically by insertion order.
		sort.SliceStable(s.open, func(i, j int) bool {
			return s.open[i].F < s.open[j].F
		})
		curr := s.open[0]
		s.open = s.open[1:]

		if goalSet[curr.State] {
			return backtrack(curr)
		}
		s.closed[curr.State] = true

		for _, state := range s.problem.Neighbors(curr.State) {
			if s.closed[state] {
				continue
			}

			g := curr.G + s.problem.Cost(curr.State, state)
			s.pushOpen(&Node[S]{
				State: state,
				G:     g,
				F:     g + s.problem.Heuristic(state, s.goals),
				prev:  curr,
			})
		}
	}

	return nil // Empty path indicates failure
}

// pushOpen adds a node to the open list, keeping at most one open
// node per distinct state. When the node's state is already open, the
// lower-f node is retained.
func (s *Search[S]) pushOpen(n *Node[S]) {
	for i, o := range s.open {
		if o.State == n.State {
			if n.F < o.F {
				s.open[i] = n
			}
			return
		}
	}
	s.open = append(s.open, n)
}

// backtrack follows parent pointers from the given node to rebuild
// the state path from the search's initial state
func backtrack[S comparable](node *Node[S]) []S {
	var reversed []S
	for curr := node; curr != nil; curr = curr.prev {
		reversed = append(reversed, curr.State)
	}

	path := make([]S, len(reversed))
	for i, state := range reversed {
		path[len(path)-1-i] = state
	}
	return path
}
