package mission

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMission = errors.New("mission: no grid specified")
	ErrNoRovers     = errors.New("mission: no rovers deployed")
)

// ParseError locates a problem in a plain text mission.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
