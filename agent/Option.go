// Package agent defines the interfaces of agents that act with
// temporally extended actions
package agent

// DeterministicOption is a temporally extended action in the options
// framework of Sutton, Precup, and Singh (1999), specialized to finite
// state spaces whose states are identified by integer indices. A
// DeterministicOption has a deterministic initiation set, internal
// policy, and termination set.
type DeterministicOption interface {
	// CanInitiate returns whether the option may be invoked in the
	// given state
	CanInitiate(state int) bool

	// Pi returns the primitive action the option's internal policy
	// takes in the given state. Options without an explicit internal
	// policy return a negative value.
	Pi(state int) int

	// TerminatesAt returns whether the option terminates upon
	// reaching the given state
	TerminatesAt(state int) bool
}
