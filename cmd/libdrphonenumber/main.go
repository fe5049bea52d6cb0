//go:build cgo

// Command libdrphonenumber is the C-callable phone-number library. It is not
// meant to be run; build it as a shared object:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -o libdrphonenumber.so ./cmd/libdrphonenumber
//
// The build also writes libdrphonenumber.h with the exported prototypes. It
// includes drphonenumber.h, which must be shipped next to it.
//
// # Ownership
//
// Input strings stay owned by the caller and are only read during the call.
// Every pointer the library returns is owned by the caller until it is handed
// back to the matching deallocator: freeString, freeRegionInfo, freeResult,
// or the generic freeMemory. The library records each allocation, so freeing
// twice, freeing with the wrong deallocator or freeing a foreign pointer is
// logged and ignored.
//
// # Failures
//
// The plain entry points report failure with a sentinel: NULL, Unknown, 0 or
// false. The *Result entry points return the error message instead. No Go
// panic crosses the boundary.
//
// # Configuration
//
// Settings are read once, on the first call, from $DRPHONENUMBER_CONFIG and
// the DRPHONENUMBER_* environment variables. See internal/config.
package main

func main() {}
