//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

import (
	"errors"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// Aliases let the _test.go files, which cannot import "C", name C types.
type (
	cChar             = C.char
	cInt              = C.int
	cInt32            = C.int32_t
	cRegionInfo       = C.RegionInfo
	cStringResult     = C.DrStringResult
	cNumberTypeResult = C.DrNumberTypeResult
	cRegionInfoResult = C.DrRegionInfoResult
	cBoolResult       = C.DrBoolResult
)

// maxRegionLength bounds region input. Valid codes are two bytes; the slack
// admits surrounding whitespace.
const maxRegionLength = 16

var errAllocation = errors.New("allocation failed")

// decodeString copies a caller-owned NUL-terminated string. It never reads
// more than limit+1 bytes.
func decodeString(p *C.char, limit int) (string, error) {
	if p == nil {
		return "", phonenumber.ErrNullPointer
	}
	n := int(C.strnlen(p, C.size_t(limit+1)))
	if n > limit {
		return "", phonenumber.ErrInputTooLong
	}
	b := C.GoBytes(unsafe.Pointer(p), C.int(n))
	if !utf8.Valid(b) {
		return "", phonenumber.ErrInvalidEncoding
	}
	return string(b), nil
}

// decodeNumber decodes a number bounded by the engine's input limit.
func decodeNumber(p *C.char) (string, error) {
	return decodeString(p, lib().engine.MaxInputLength())
}

// decodeRegion decodes and canonicalises a region code. An empty region
// stays empty so that the engine applies its default region.
func decodeRegion(p *C.char) (string, error) {
	s, err := decodeString(p, maxRegionLength)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return phonenumber.NormalizeRegion(s)
}

// allocString copies s into C memory. The result is not registered; callers
// either register it or embed it in a registered struct.
func allocString(s string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, phonenumber.ErrInvalidEncoding
	}
	p := C.malloc(C.size_t(len(s) + 1))
	if p == nil {
		return nil, errAllocation
	}
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return (*C.char)(p), nil
}

// encodeString returns a registered, caller-owned copy of s.
func encodeString(s string) (*C.char, error) {
	p, err := allocString(s)
	if err != nil {
		return nil, err
	}
	allocs.track(unsafe.Pointer(p), kindString)
	return p, nil
}

// releaseString zeroes and frees a string from allocString. Nil is a no-op.
func releaseString(p *C.char) {
	if p == nil {
		return
	}
	C.memset(unsafe.Pointer(p), 0, C.strlen(p))
	C.free(unsafe.Pointer(p))
}

// zeroFree clears size bytes at p and frees it.
func zeroFree(p unsafe.Pointer, size uintptr) {
	C.memset(p, 0, C.size_t(size))
	C.free(p)
}

// callocStruct returns size zeroed bytes of C memory, or nil.
func callocStruct(size uintptr) unsafe.Pointer {
	return C.calloc(1, C.size_t(size))
}
