// Package buildassert provides assertions checked by the build instead
// of at run time.
//
// An assertion the toolchain can prove true disappears entirely from
// the binary. One it cannot prove leaves a call to an undefined symbol
// in the object, and the link fails naming the function that kept the
// assertion alive. Checks are therefore free in any binary that
// builds, and violations are reported before a binary exists.
//
//	func window(n int) int {
//		buildassert.Assert(n > 0 && n&(n-1) == 0)
//		return n - 1
//	}
//
//	window(16) // folds away, costs nothing
//	window(24) // fails the link: relocation target .../internal/trap.Fail not defined
//
// # Build modes
//
// Build tags select what a retained assertion does.
//
//   - Default: a retained assertion is a call to the undefined symbol
//     github.com/zeebo/buildassert/internal/trap.Fail and the link
//     fails.
//   - noasm: the undefined symbol is the external __build_error_impl
//     instead. The name is configurable, and a definition of it
//     supplied at final link takes over retained traps. See package
//     internal/trap.
//   - debug: assertions become ordinary runtime checks that panic with
//     the failing file and line. Required whenever optimizations are
//     off, in particular with -gcflags='-N -l', where nothing folds and
//     the other modes fail the link spuriously. The pairing applies to
//     tests too: go test -gcflags=all='-N -l' needs -tags debug.
//
// # What the build can prove
//
// Elimination rides on inlining followed by constant folding. The
// functions here are small enough to always inline, so a condition is
// provable when its inputs are constant at the call site: literals and
// named constants, len of constant strings, unsafe.Sizeof results, and
// constants propagated through calls that themselves inline. Within
// generic code, unsafe.Sizeof of a type parameter folds separately for
// each instantiation, so only a violating instantiation fails the
// build. Conditions on values that exist only at run time are never
// provable and fail the link even when dynamically true; those belong
// behind the debug tag or in ordinary error handling.
//
// Coverage instrumentation counts against the inline budget. If
// instrumenting a package that asserts in the default modes pushes a
// call site past the budget, run that package's tests with -tags debug.
//
// Fail, Assertf, Equalf, NotEqualf and Failf carry a message. Only the
// debug mode's panic uses it; the build-time modes discard it, and its
// arguments are eliminated along with the call that carried them.
package buildassert
