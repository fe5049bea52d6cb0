//go:build cgo

package main

// #include "drphonenumber.h"
import "C"

import (
	"context"
	"fmt"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// The *Op functions hold the logic shared by the plain and the *Result
// entry points. They work on Go values and return errors from the
// phonenumber taxonomy.

func decodeInputs(number, regionCode *C.char) (string, string, error) {
	n, err := decodeNumber(number)
	if err != nil {
		return "", "", fmt.Errorf("number: %w", err)
	}
	r, err := decodeRegion(regionCode)
	if err != nil {
		return "", "", fmt.Errorf("region: %w", err)
	}
	return n, r, nil
}

func formatOp(number, regionCode *C.char, style C.int) (string, error) {
	f, ok := phonenumber.FormatFromOrdinal(int(style))
	if !ok {
		return "", fmt.Errorf("%w: %d", phonenumber.ErrUnknownFormat, int(style))
	}
	n, r, err := decodeInputs(number, regionCode)
	if err != nil {
		return "", err
	}
	return lib().engine.Format(n, r, f)
}

func numberTypeOp(number, regionCode *C.char) (phonenumber.NumberType, error) {
	n, r, err := decodeInputs(number, regionCode)
	if err != nil {
		return phonenumber.Unknown, err
	}
	return lib().engine.NumberType(n, r)
}

func regionCodeOp(code C.int32_t) (string, error) {
	return lib().engine.RegionCodeForCountryCode(int32(code))
}

func regionInfoOp(number, regionCode *C.char) (phonenumber.RegionInfo, error) {
	n, r, err := decodeInputs(number, regionCode)
	if err != nil {
		return phonenumber.RegionInfo{}, err
	}
	return lib().engine.RegionInfo(n, r)
}

func isValidOp(number, regionCode *C.char) (bool, error) {
	n, r, err := decodeInputs(number, regionCode)
	if err != nil {
		return false, err
	}
	return lib().engine.IsValid(n, r)
}

func countryCodeOp(regionCode *C.char) (int32, error) {
	r, err := decodeRegion(regionCode)
	if err != nil {
		return 0, err
	}
	return lib().engine.CountryCodeForRegion(r)
}

// failed records an error that a plain entry point flattens into its
// sentinel.
func failed(op string, err error) {
	boundaryLogger().Debug(context.Background(), "operation failed", "op", op, "error", err)
}
