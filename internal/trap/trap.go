//go:build !noasm

package trap

// Fail has no body and no implementation anywhere. The stub assembly
// file keeps the compiler from demanding one, and the linker only
// looks for it if a call survives optimization.
func Fail()
