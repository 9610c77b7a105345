//go:build gofuzz

package ident

// Fuzz checks that Mangle always produces a usable identifier.
func Fuzz(data []byte) int {
	name := Mangle(string(data))
	if !Valid(name) {
		panic("mangle produced an invalid identifier: " + name)
	}
	return 1
}
