package main

import "github.com/zeebo/buildassert"

const bufSize = 24

func main() {
	buildassert.Assert(bufSize%16 == 0)
}
