package paramak

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a shape or reactor parameter is out
	// of range, breaks an ordering constraint or names an unknown enum value.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateGeometry is returned when a construction needs a direction
	// that does not exist, such as extending between coincident points.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrKernel is returned when the geometry kernel fails to build a solid.
	ErrKernel = errors.New("kernel construction failure")
)

// ParamError describes a parameter that failed validation.
type ParamError struct {
	Shape  string // shape or reactor the parameter belongs to
	Param  string
	Reason string
}

func (e *ParamError) Error() string {
	if e.Shape == "" {
		return fmt.Sprintf("%s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Shape, e.Param, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// Paramf returns a *ParamError with a formatted reason.
func Paramf(shape, param, format string, args ...any) error {
	return &ParamError{Shape: shape, Param: param, Reason: fmt.Sprintf(format, args...)}
}

// KernelError wraps a failure reported by the geometry kernel.
type KernelError struct {
	Op        string // kernel operation, i.e. "revolve" or "cut"
	Component string
	Err       error
}

func (e *KernelError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("kernel %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("kernel %s %q: %v", e.Op, e.Component, e.Err)
}

// Is reports ErrKernel as well as the wrapped kernel error.
func (e *KernelError) Is(target error) bool { return target == ErrKernel }

func (e *KernelError) Unwrap() error { return e.Err }
