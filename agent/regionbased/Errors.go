package regionbased

import (
	"errors"
	"fmt"
)

var errInvalidArgument = errors.New("invalid argument")

// AgentError describes an error that occurred during an agent
// operation and the operation that caused the error
type AgentError struct {
	Op  string
	Err error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

// IsInvalidArgument returns whether err indicates that an illegal
// argument was given to an agent operation
func IsInvalidArgument(err error) bool {
	return errors.Is(err, errInvalidArgument)
}
