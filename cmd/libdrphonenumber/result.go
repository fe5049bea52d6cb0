//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

import (
	"strings"
	"unsafe"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

const (
	stringResultSize     = unsafe.Sizeof(C.DrStringResult{})
	numberTypeResultSize = unsafe.Sizeof(C.DrNumberTypeResult{})
	regionInfoResultSize = unsafe.Sizeof(C.DrRegionInfoResult{})
	boolResultSize       = unsafe.Sizeof(C.DrBoolResult{})
)

// Each constructor returns a registered result with exactly one of data and
// error set, or nil when memory for the result itself is unavailable.

func newStringResult(s string, err error) *C.DrStringResult {
	r := (*C.DrStringResult)(callocStruct(stringResultSize))
	if r == nil {
		return nil
	}
	if err == nil {
		r.data, err = allocString(s)
	}
	if err != nil && !setError(&r.error, err) {
		zeroFree(unsafe.Pointer(r), stringResultSize)
		return nil
	}
	allocs.track(unsafe.Pointer(r), kindStringResult)
	return r
}

func newNumberTypeResult(t phonenumber.NumberType, err error) *C.DrNumberTypeResult {
	r := (*C.DrNumberTypeResult)(callocStruct(numberTypeResultSize))
	if r == nil {
		return nil
	}
	r.data = C.int(t)
	if err != nil {
		r.data = C.int(phonenumber.Unknown)
		if !setError(&r.error, err) {
			zeroFree(unsafe.Pointer(r), numberTypeResultSize)
			return nil
		}
	}
	allocs.track(unsafe.Pointer(r), kindNumberTypeResult)
	return r
}

func newRegionInfoResult(info phonenumber.RegionInfo, err error) *C.DrRegionInfoResult {
	r := (*C.DrRegionInfoResult)(callocStruct(regionInfoResultSize))
	if r == nil {
		return nil
	}
	if err == nil {
		r.data, err = newRegionInfo(info)
	}
	if err != nil && !setError(&r.error, err) {
		zeroFree(unsafe.Pointer(r), regionInfoResultSize)
		return nil
	}
	allocs.track(unsafe.Pointer(r), kindRegionInfoResult)
	return r
}

func newBoolResult(v bool, err error) *C.DrBoolResult {
	r := (*C.DrBoolResult)(callocStruct(boolResultSize))
	if r == nil {
		return nil
	}
	r.data = C.bool(v && err == nil)
	if err != nil && !setError(&r.error, err) {
		zeroFree(unsafe.Pointer(r), boolResultSize)
		return nil
	}
	allocs.track(unsafe.Pointer(r), kindBoolResult)
	return r
}

// setError stores an owned copy of err's message in *dst.
func setError(dst **C.char, err error) bool {
	msg, aerr := allocString(errorMessage(err))
	if aerr != nil {
		return false
	}
	*dst = msg
	return true
}

// errorMessage drops NUL bytes, which cannot cross the boundary inside a C
// string.
func errorMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\x00", "")
}

// releaseResult frees a result of kind k together with its members.
func releaseResult(p unsafe.Pointer, k allocKind) {
	switch k {
	case kindStringResult:
		r := (*C.DrStringResult)(p)
		releaseString(r.data)
		releaseString(r.error)
		zeroFree(p, stringResultSize)
	case kindNumberTypeResult:
		r := (*C.DrNumberTypeResult)(p)
		releaseString(r.error)
		zeroFree(p, numberTypeResultSize)
	case kindRegionInfoResult:
		r := (*C.DrRegionInfoResult)(p)
		releaseRegionInfo(r.data)
		releaseString(r.error)
		zeroFree(p, regionInfoResultSize)
	case kindBoolResult:
		r := (*C.DrBoolResult)(p)
		releaseString(r.error)
		zeroFree(p, boolResultSize)
	}
}
