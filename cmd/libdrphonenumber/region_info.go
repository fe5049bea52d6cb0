//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

import (
	"unsafe"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

const regionInfoSize = unsafe.Sizeof(C.RegionInfo{})

// newRegionInfo builds an unregistered RegionInfo. On failure nothing stays
// allocated.
func newRegionInfo(info phonenumber.RegionInfo) (*C.RegionInfo, error) {
	country, err := allocString(info.RegionCode)
	if err != nil {
		return nil, err
	}
	formatted, err := allocString(info.FormattedNumber)
	if err != nil {
		releaseString(country)
		return nil, err
	}
	ri := (*C.RegionInfo)(callocStruct(regionInfoSize))
	if ri == nil {
		releaseString(formatted)
		releaseString(country)
		return nil, errAllocation
	}
	ri.region_code = C.int32_t(info.CountryCallingCode)
	ri.country_code = country
	ri.phone_number_value = C.int64_t(info.NationalNumber)
	ri.formatted_number = formatted
	return ri, nil
}

// releaseRegionInfo frees ri and both of its strings. Nil is a no-op.
func releaseRegionInfo(ri *C.RegionInfo) {
	if ri == nil {
		return
	}
	releaseString(ri.country_code)
	releaseString(ri.formatted_number)
	zeroFree(unsafe.Pointer(ri), regionInfoSize)
}
