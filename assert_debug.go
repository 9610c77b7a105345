//go:build debug

package buildassert

import (
	"fmt"
	"runtime"
	"strconv"
)

// Debug reports whether assertions are checked at run time instead of
// by the build.
const Debug = true

// Assert panics when cond is false.
func Assert(cond bool) {
	if !cond {
		fail("assertion failed")
	}
}

// Assertf panics with the formatted message when cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		fail(fmt.Sprintf(format, args...))
	}
}

// Equal panics when a and b differ.
func Equal[T comparable](a, b T) {
	if a != b {
		fail(fmt.Sprintf("assertion failed: left == right; left: %v, right: %v", a, b))
	}
}

// Equalf panics with the formatted message when a and b differ.
func Equalf[T comparable](a, b T, format string, args ...any) {
	if a != b {
		fail(fmt.Sprintf(format, args...))
	}
}

// NotEqual panics when a and b are equal.
func NotEqual[T comparable](a, b T) {
	if a == b {
		fail(fmt.Sprintf("assertion failed: left != right; both: %v", a))
	}
}

// NotEqualf panics with the formatted message when a and b are equal.
func NotEqualf[T comparable](a, b T, format string, args ...any) {
	if a == b {
		fail(fmt.Sprintf(format, args...))
	}
}

// Fail panics unconditionally with msg.
func Fail(msg string) {
	fail(msg)
}

// Failf panics unconditionally with the formatted message.
func Failf(format string, args ...any) {
	fail(fmt.Sprintf(format, args...))
}

// fail panics with the caller of the exported function prepended, so
// reports point at the assertion and not at this package.
func fail(msg string) {
	if _, file, line, ok := runtime.Caller(2); ok {
		panic("buildassert: " + file + ":" + strconv.Itoa(line) + ": " + msg)
	}
	panic("buildassert: " + msg)
}
