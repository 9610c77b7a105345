// Package trap declares the symbol that a retained build assertion
// resolves against.
//
// The package defines nothing on purpose. Fail exists only as a
// declaration: a call to it that survives optimization leaves a
// relocation the linker cannot satisfy, failing the build and naming
// the function that kept the assertion alive. A call that folds away
// costs nothing and leaves no trace in the binary.
//
// Under the noasm tag, Fail is instead pulled from an external symbol,
// __build_error_impl by default. That name is shared by every package
// in the final link, so one name per link unit; nothing here enforces
// uniqueness beyond that discipline. Supplying a definition of the
// symbol at final link (from a cgo file or an extra object) converts
// retained traps into calls to that definition instead of link errors.
//
// The external name is fixed when trap_noasm.go is generated:
//
//	BUILDASSERT_TRAP_SYMBOL=my_trap_sym go generate ./internal/trap
//
// Regeneration is required for a name change to take effect. A stale
// trap_noasm.go keeps failing builds with the previous name, so treat
// the variable as an input to the generated file, not to the build.
package trap

//go:generate go run github.com/zeebo/buildassert/cmd/envident -env BUILDASSERT_TRAP_SYMBOL -default __build_error_impl -template trap_noasm.go.tmpl -out trap_noasm.go
