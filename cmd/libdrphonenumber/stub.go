//go:build !cgo

package main

import (
	"fmt"
	"os"
)

// The library only makes sense as a cgo c-shared build.
func main() {
	fmt.Fprintln(os.Stderr, "libdrphonenumber: built without cgo; rebuild with CGO_ENABLED=1 -buildmode=c-shared")
	os.Exit(1)
}
