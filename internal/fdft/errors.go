package fdft

import (
	"errors"
	"fmt"
)

// Domain errors for model evaluation.
var (
	// ErrDomain indicates a radius where the model is undefined (r <= 0, NaN or Inf).
	ErrDomain = errors.New("fdft: radius outside model domain")

	// ErrParameterBounds indicates a galaxy parameter is outside valid range.
	ErrParameterBounds = errors.New("fdft: parameter out of valid bounds")

	// ErrGrid indicates an invalid radius grid request.
	ErrGrid = errors.New("fdft: invalid radius grid")

	// ErrUnknownParam indicates SetParam was called with an unknown name.
	ErrUnknownParam = errors.New("fdft: unknown parameter")
)

// DomainError wraps ErrDomain with the offending sample.
type DomainError struct {
	Index  int
	Radius float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: r[%d] = %g", ErrDomain.Error(), e.Index, e.Radius)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// ParamError wraps ErrParameterBounds with the parameter name and value.
type ParamError struct {
	Name  string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g", ErrParameterBounds.Error(), e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}
