package main

import (
	"fmt"

	"github.com/zeebo/buildassert"
)

const blockSize = 64

func main() {
	buildassert.Assert(blockSize%8 == 0)
	buildassert.Assertf(blockSize <= 1<<16, "block size %d too large", blockSize)
	buildassert.Equal(blockSize/8, 8)
	buildassert.NotEqual(blockSize, 0)
	fmt.Println("ok")
}
