//go:build !debug

package numeric

// trace is a no-op in release builds; bisection tracing costs nothing
// here so production numerics are not paid for twice.
func trace(format string, args ...interface{}) {}

// assertBisect is a no-op in release builds; see trace_debug.go for the
// debug-build post-condition check.
func assertBisect(hi int, f func(int) bool) {}
