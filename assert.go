//go:build !debug

package buildassert

import "github.com/zeebo/buildassert/internal/trap"

// Debug reports whether assertions are checked at run time instead of
// by the build. It is false unless the debug build tag is set.
const Debug = false

// Assert requires cond to be provably true under the active build
// configuration. A provable condition compiles to nothing; anything
// else leaves the trap call live and the build fails.
func Assert(cond bool) {
	if !cond {
		trap.Fail()
	}
}

// Assertf is Assert with a message for the debug build mode. The
// message and its arguments are discarded here.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		trap.Fail()
	}
}

// Equal requires a and b to be provably equal.
func Equal[T comparable](a, b T) {
	if a != b {
		trap.Fail()
	}
}

// Equalf is Equal with a message for the debug build mode.
func Equalf[T comparable](a, b T, format string, args ...any) {
	if a != b {
		trap.Fail()
	}
}

// NotEqual requires a and b to be provably distinct.
func NotEqual[T comparable](a, b T) {
	if a == b {
		trap.Fail()
	}
}

// NotEqualf is NotEqual with a message for the debug build mode.
func NotEqualf[T comparable](a, b T, format string, args ...any) {
	if a == b {
		trap.Fail()
	}
}

// Fail is an unconditional trap for branches the caller has proven
// unreachable. Reaching one in a surviving code path fails the build.
func Fail(msg string) {
	trap.Fail()
}

// Failf is Fail with a format string for the debug build mode.
func Failf(format string, args ...any) {
	trap.Fail()
}
