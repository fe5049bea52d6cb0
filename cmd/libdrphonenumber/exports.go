//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

import (
	"unsafe"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// format parses number with the regionCode hint and renders it in style.
// It returns NULL on any failure, including an out-of-range style.
//
//export format
func format(number, regionCode *C.char, style C.int) (out *C.char) {
	defer guard("format", func() { out = nil })

	s, err := formatOp(number, regionCode, style)
	if err != nil {
		failed("format", err)
		return nil
	}
	p, err := encodeString(s)
	if err != nil {
		failed("format", err)
		return nil
	}
	return p
}

// getNumberType returns the PhoneNumberType ordinal of number, or Unknown on
// any failure. Use getNumberTypeResult to tell the two apart.
//
//export getNumberType
func getNumberType(number, regionCode *C.char) (out C.int) {
	defer guard("getNumberType", func() { out = C.int(phonenumber.Unknown) })

	t, err := numberTypeOp(number, regionCode)
	if err != nil {
		failed("getNumberType", err)
		return C.int(phonenumber.Unknown)
	}
	return C.int(t)
}

// getRegionCodeForCountryCode returns the main ISO region of a country
// calling code ("US" for 1), or NULL when the code is not assigned.
//
//export getRegionCodeForCountryCode
func getRegionCodeForCountryCode(countryCode C.int32_t) (out *C.char) {
	defer guard("getRegionCodeForCountryCode", func() { out = nil })

	region, err := regionCodeOp(countryCode)
	if err != nil {
		failed("getRegionCodeForCountryCode", err)
		return nil
	}
	p, err := encodeString(region)
	if err != nil {
		failed("getRegionCodeForCountryCode", err)
		return nil
	}
	return p
}

// getRegionInfo returns a fully populated RegionInfo, or NULL.
//
//export getRegionInfo
func getRegionInfo(number, regionCode *C.char) (out *C.RegionInfo) {
	defer guard("getRegionInfo", func() { out = nil })

	info, err := regionInfoOp(number, regionCode)
	if err != nil {
		failed("getRegionInfo", err)
		return nil
	}
	ri, err := newRegionInfo(info)
	if err != nil {
		failed("getRegionInfo", err)
		return nil
	}
	allocs.track(unsafe.Pointer(ri), kindRegionInfo)
	return ri
}

// isValidPhoneNumber reports whether number is valid. Any failure reads as
// false.
//
//export isValidPhoneNumber
func isValidPhoneNumber(number, regionCode *C.char) (out C.bool) {
	defer guard("isValidPhoneNumber", func() { out = false })

	ok, err := isValidOp(number, regionCode)
	if err != nil {
		failed("isValidPhoneNumber", err)
		return false
	}
	return C.bool(ok)
}

// getCountryCodeForRegion returns the calling code of regionCode, or 0.
//
//export getCountryCodeForRegion
func getCountryCodeForRegion(regionCode *C.char) (out C.int32_t) {
	defer guard("getCountryCodeForRegion", func() { out = 0 })

	code, err := countryCodeOp(regionCode)
	if err != nil {
		failed("getCountryCodeForRegion", err)
		return 0
	}
	return C.int32_t(code)
}

// getLibraryVersion returns an owned string such as
// "v1.2.3 (phonenumbers v1.6.10)". Release it with freeString.
//
//export getLibraryVersion
func getLibraryVersion() (out *C.char) {
	defer guard("getLibraryVersion", func() { out = nil })

	p, err := encodeString(phonenumber.VersionString())
	if err != nil {
		failed("getLibraryVersion", err)
		return nil
	}
	return p
}

// liveAllocations returns how many returned pointers have not been released.
//
//export liveAllocations
func liveAllocations() (out C.int64_t) {
	defer guard("liveAllocations", func() { out = -1 })

	return C.int64_t(allocs.live())
}
