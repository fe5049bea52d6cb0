//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

import (
	"context"
	"unsafe"
)

// freeString releases a string returned by format, getRegionCodeForCountryCode
// or getLibraryVersion. NULL is a no-op.
//
//export freeString
func freeString(ptr *C.char) {
	defer guard("freeString", func() {})

	p := unsafe.Pointer(ptr)
	if p == nil {
		return
	}
	if k, ok := allocs.claim(p, isKind(kindString)); !ok {
		rejectFree("freeString", p, k)
		return
	}
	releaseString(ptr)
}

// freeRegionInfo releases a RegionInfo and both of its strings. NULL is a
// no-op.
//
//export freeRegionInfo
func freeRegionInfo(ptr *C.RegionInfo) {
	defer guard("freeRegionInfo", func() {})

	p := unsafe.Pointer(ptr)
	if p == nil {
		return
	}
	if k, ok := allocs.claim(p, isKind(kindRegionInfo)); !ok {
		rejectFree("freeRegionInfo", p, k)
		return
	}
	releaseRegionInfo(ptr)
}

// freeResult releases any result struct with its members. NULL is a no-op.
//
//export freeResult
func freeResult(ptr unsafe.Pointer) {
	defer guard("freeResult", func() {})

	if ptr == nil {
		return
	}
	k, ok := allocs.claim(ptr, anyResult)
	if !ok {
		rejectFree("freeResult", ptr, k)
		return
	}
	releaseResult(ptr, k)
}

// freeMemory releases any pointer returned by the library, whatever its
// kind. NULL is a no-op.
//
//export freeMemory
func freeMemory(ptr unsafe.Pointer) {
	defer guard("freeMemory", func() {})

	if ptr == nil {
		return
	}
	k, ok := allocs.claim(ptr, anyKind)
	if !ok {
		rejectFree("freeMemory", ptr, k)
		return
	}
	switch {
	case k == kindString:
		releaseString((*C.char)(ptr))
	case k == kindRegionInfo:
		releaseRegionInfo((*C.RegionInfo)(ptr))
	case k.isResult():
		releaseResult(ptr, k)
	}
}

// rejectFree logs a free that was ignored: an unknown pointer (already
// freed, or never returned by the library) or one owned by another
// deallocator.
func rejectFree(op string, p unsafe.Pointer, k allocKind) {
	reason := "unknown pointer"
	if k != 0 {
		reason = "pointer owned by another deallocator"
	}
	boundaryLogger().Warn(context.Background(), "ignored free", "op", op, "reason", reason,
		"kind", k.String(), "ptr", uintptr(p))
}
