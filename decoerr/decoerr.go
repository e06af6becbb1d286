// Package decoerr defines the typed error kinds shared by the decocore
// model, its numeric primitives and its step validator.
package decoerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap them with fmt.Errorf("%w: ...", ErrX) to attach
// context; callers compare with errors.Is.
var (
	// ErrBadStep is returned by numeric.Seq when step cannot reach stop
	// from start, or is zero.
	ErrBadStep = errors.New("decocore: bad step")

	// ErrOutOfRange is returned by numeric.BisectFindStrict when no
	// interior solution exists.
	ErrOutOfRange = errors.New("decocore: bisection result out of range")

	// ErrBadArgument is returned when a caller-supplied precondition is
	// violated (non-positive segment time, gf outside (0, 1.5], etc.).
	ErrBadArgument = errors.New("decocore: bad argument")

	// ErrCeilingViolated is the sentinel a *CeilingViolation (returned by
	// package validator) satisfies via errors.Is.
	ErrCeilingViolated = errors.New("decocore: ceiling violated")
)

// CeilingViolation is returned by a step validator when a dive step's
// ambient pressure is strictly less than its computed ascent ceiling. It
// carries both values so the caller can report how far the step missed by.
type CeilingViolation struct {
	Pressure float64
	Ceiling  float64
}

func (e *CeilingViolation) Error() string {
	return fmt.Sprintf("decocore: ceiling violated: pressure %.4f bar below ceiling %.4f bar", e.Pressure, e.Ceiling)
}

// Is lets errors.Is(err, ErrCeilingViolated) succeed for a *CeilingViolation.
func (e *CeilingViolation) Is(target error) bool {
	return target == ErrCeilingViolated
}
