package main

import (
	"fmt"

	"github.com/zeebo/buildassert"
)

// window returns the index mask for a power-of-two ring of size n.
func window(n int) int {
	buildassert.Assert(n > 0 && n&(n-1) == 0)
	return n - 1
}

func main() {
	fmt.Println(window(16))
}
