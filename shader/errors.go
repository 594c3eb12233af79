package shader

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoUnits is returned by Link when it is given nothing to link.
	ErrNoUnits = errors.New("shader: link requires at least one unit")
	// ErrUnitReleased is returned by Link when one of its units was destroyed
	// or already consumed by an earlier link.
	ErrUnitReleased = errors.New("shader: unit has already been released")
)

// CompileError carries the driver's diagnostic for a shader stage that did
// not compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the driver's diagnostic for a program that did not link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
