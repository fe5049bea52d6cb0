//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

// The *Result entry points mirror the plain ones but report why an
// operation failed. They return NULL only when the result itself cannot be
// allocated. Release every result with freeResult or freeMemory.

//export formatResult
func formatResult(number, regionCode *C.char, style C.int) (out *C.DrStringResult) {
	defer guard("formatResult", func() { out = nil })

	return newStringResult(formatOp(number, regionCode, style))
}

// getNumberTypeResult sets error only when classification failed; a
// well-formed number the engine cannot classify is Unknown with no error.
//
//export getNumberTypeResult
func getNumberTypeResult(number, regionCode *C.char) (out *C.DrNumberTypeResult) {
	defer guard("getNumberTypeResult", func() { out = nil })

	return newNumberTypeResult(numberTypeOp(number, regionCode))
}

//export getRegionCodeForCountryCodeResult
func getRegionCodeForCountryCodeResult(countryCode C.int32_t) (out *C.DrStringResult) {
	defer guard("getRegionCodeForCountryCodeResult", func() { out = nil })

	return newStringResult(regionCodeOp(countryCode))
}

//export getRegionInfoResult
func getRegionInfoResult(number, regionCode *C.char) (out *C.DrRegionInfoResult) {
	defer guard("getRegionInfoResult", func() { out = nil })

	return newRegionInfoResult(regionInfoOp(number, regionCode))
}

//export isValidPhoneNumberResult
func isValidPhoneNumberResult(number, regionCode *C.char) (out *C.DrBoolResult) {
	defer guard("isValidPhoneNumberResult", func() { out = nil })

	return newBoolResult(isValidOp(number, regionCode))
}
