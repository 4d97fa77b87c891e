// Package environment outlines the interface between tabular
// environments and the graph machinery built on top of them
package environment

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// Cardinality indicates whether the associated type is continuous or
// discrete
type Cardinality int

const (
	Discrete Cardinality = iota
	Continuous
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action or an observation.
type SpecType int

const (
	Action SpecType = iota
	Observation
)

// Spec implements a specification, which tells the type, shape, and
// bounds of an action or observation
type Spec struct {
	Type   SpecType
	Bounds []r1.Interval
	Cardinality
}

// Tabular is the surface the graph machinery consumes from an
// environment: a finite, enumerable state space and a deterministic
// transition function over a discrete action space.
//
// Transition must be a pure function of its arguments. Invalid actions
// (for example, moving into a wall) must return the input state
// unchanged; the transition graph builder relies on this to detect
// no-op actions.
type Tabular interface {
	// States returns every valid state of the environment, in a
	// fixed enumeration order. The order defines the vertex
	// indexing of the state-transition graph.
	States() []mat.Vector

	// Transition returns the state reached by taking the given
	// action in the given state
	Transition(state mat.Vector, action int) mat.Vector

	// Actions returns the size of the discrete action space
	Actions() int

	ObservationSpec() Spec
	ActionSpec() Spec
}
