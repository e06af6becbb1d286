//go:build debug

package numeric

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// trace prints a bisection trace line, mirroring the logger.debug calls
// the original source makes at every bisection step.
func trace(format string, args ...interface{}) {
	io.Pforan(format+"\n", args...)
}

// assertBisect checks the bisection post-condition: f(hi-1) is true and
// f(hi) is false. Only compiled into debug builds.
func assertBisect(hi int, f func(int) bool) {
	if !f(hi - 1) {
		chk.Panic("bisect post-condition failed: f(%d) should be true", hi-1)
	}
	if f(hi) {
		chk.Panic("bisect post-condition failed: f(%d) should be false", hi)
	}
}
