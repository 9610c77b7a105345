package main

import (
	"fmt"
	"unsafe"

	"github.com/zeebo/buildassert"
)

// pack8 lays out fixed 8-byte elements.
func pack8[T any](xs []T) int {
	var zero T
	buildassert.Equal(unsafe.Sizeof(zero), uintptr(8))
	return 8 * len(xs)
}

func main() {
	fmt.Println(pack8([]uint64{1, 2, 3}))
	fmt.Println(pack8([]float64{4, 5}))
}
