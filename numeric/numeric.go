// Package numeric implements the monotone bisection, fixed-point and
// arithmetic-range primitives a dive planner drives against the decocore
// model to locate first-stop depths and stop durations.
//
// None of the three primitives know anything about diving; they are
// generic search tools. A planner supplies the predicate (typically one
// that evaluates Model.Load and Model.PressureLimit) and these functions
// do the searching.
package numeric

import "github.com/m5lapp/decocore/decoerr"

// Seq produces the finite arithmetic range start, start+step, ..., whose
// last value is <= stop if step > 0 or >= stop if step < 0. It fails with
// decoerr.ErrBadStep if the sign of step cannot reach stop from start, or
// if step is zero.
//
// Restartability of the returned slice is not required of callers; it is
// a plain value the caller may range over once or many times.
func Seq(start, stop, step float64) ([]float64, error) {
	if step == 0 || (start > stop && step > 0) || (start < stop && step < 0) {
		return nil, decoerr.ErrBadStep
	}

	count := int((stop-start)/step) + 1
	out := make([]float64, count)
	for k := range out {
		out[k] = start + float64(k)*step
	}
	return out, nil
}

// RecurseWhile evaluates f repeatedly, threading its return value into
// the next call, for as long as predicate holds on the current value. It
// returns the last input to f for which predicate held, or start
// unchanged if predicate is false on start.
//
// f and predicate must be pure and terminating from the caller's
// perspective; RecurseWhile applies no iteration cap.
func RecurseWhile(predicate func(float64) bool, f func(float64) float64, start float64) float64 {
	var last float64
	found := false
	x := start
	for predicate(x) {
		last = x
		found = true
		x = f(x)
	}
	if !found {
		return start
	}
	return last
}

// BisectFind returns the largest k in [0, n) for which the monotone
// non-increasing predicate f is true, using the saturating boundary
// policy: -1 if f is false at 0 (no k satisfies f), n if f is true on
// the whole range. This is the default variant; the planner relies on
// these sentinel values to detect "ceiling never reached" and "ceiling
// always exceeded" conditions.
//
// f must be monotone non-increasing: true on a prefix of [0, n), false on
// the remaining suffix.
func BisectFind(n int, f func(int) bool) int {
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		trace("bisect range: %d <= %d <= %d", lo, mid, hi)
		if f(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	switch {
	case hi == 0:
		// f is false at 0: no k in [0, n) satisfies f.
		return -1
	case hi == n:
		// hi was never narrowed below n, so f held at every midpoint
		// tested: every k in [0, n) satisfies f.
		return n
	default:
		assertBisect(hi, f)
		return hi - 1
	}
}

// BisectFindStrict is the alternate variant present in the original
// source: it raises decoerr.ErrOutOfRange instead of saturating when no
// k in [0, n) satisfies f, or when every k does. Prefer BisectFind unless
// a caller specifically wants the strict failure mode.
func BisectFindStrict(n int, f func(int) bool) (int, error) {
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		trace("bisect range: %d <= %d <= %d", lo, mid, hi)
		if f(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if hi == 0 || lo == n {
		return hi - 1, decoerr.ErrOutOfRange
	}
	assertBisect(hi, f)
	return hi - 1, nil
}
