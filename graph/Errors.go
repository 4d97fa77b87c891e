package graph

import "errors"

// GraphError wraps errors produced by graph operations with the name of
// the operation that failed.
type GraphError struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *GraphError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause of a GraphError
func (e *GraphError) Unwrap() error {
	return e.Err
}

var errInvalidArgument = errors.New("invalid argument")

var errEdgeNotFound = errors.New("edge not found")

// IsInvalidArgument returns whether or not an error reports that an
// argument to a graph operation was out of range or otherwise illegal,
// for example a vertex index beyond the vertex count or a component
// count outside [1, |V|].
func IsInvalidArgument(err error) bool {
	if graphErr, ok := err.(*GraphError); ok {
		err = graphErr.Err
	}
	return errors.Is(err, errInvalidArgument)
}

// IsEdgeNotFound returns whether or not an error reports that an edge
// required by an operation does not exist in the graph.
func IsEdgeNotFound(err error) bool {
	if graphErr, ok := err.(*GraphError); ok {
		err = graphErr.Err
	}
	return errors.Is(err, errEdgeNotFound)
}
