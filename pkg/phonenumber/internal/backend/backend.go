package backend

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

const (
	enginePath = "github.com/nyaruka/phonenumbers"

	// pinnedEngineVersion is reported when build info is unavailable, e.g.
	// in binaries stripped of module data.
	pinnedEngineVersion = "v1.6.10"
)

// UnknownRegion is the engine's placeholder for "no region".
const UnknownRegion = phonenumbers.UNKNOWN_REGION

var (
	// ErrUnknownRegion is returned when the engine has no metadata for a
	// region, or cannot infer a country calling code for a number.
	ErrUnknownRegion = errors.New("backend: unknown region")

	// ErrUnknownCallingCode is returned for country calling codes that map
	// to no region.
	ErrUnknownCallingCode = errors.New("backend: unknown country calling code")

	// ErrParse is returned when the engine rejects the number itself.
	ErrParse = errors.New("backend: number could not be parsed")

	// ErrUnknownFormat is returned for Format values outside the ABI table.
	ErrUnknownFormat = errors.New("backend: unknown format")
)

// Number is a parsed phone number. The engine representation never leaves
// this package.
type Number struct {
	pn *phonenumbers.PhoneNumber
}

// Parse parses number using region as the default region hint. region must
// already be canonical (upper case, or UnknownRegion).
func Parse(number, region string) (*Number, error) {
	pn, err := phonenumbers.Parse(number, region)
	if err != nil {
		if errors.Is(err, phonenumbers.ErrInvalidCountryCode) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownRegion, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Number{pn: pn}, nil
}

// CountryCode returns the country calling code, e.g. 60 for Malaysia.
func (n *Number) CountryCode() int32 {
	return n.pn.GetCountryCode()
}

// NationalNumber returns the national significant number as an integer.
// Leading zeros that are part of the national number (Italy) are not
// represented.
func (n *Number) NationalNumber() uint64 {
	return n.pn.GetNationalNumber()
}

// Format renders the number in the given style.
func (n *Number) Format(f Format) (string, error) {
	ef, err := FormatToEngine(f)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(n.pn, ef), nil
}

// Type classifies the number.
func (n *Number) Type() NumberType {
	return NumberTypeFromEngine(phonenumbers.GetNumberType(n.pn))
}

// IsValid reports whether the number matches a known pattern for its region.
func (n *Number) IsValid() bool {
	return phonenumbers.IsValidNumber(n.pn)
}

// IsPossible reports whether the number has a plausible length.
func (n *Number) IsPossible() bool {
	return phonenumbers.IsPossibleNumber(n.pn)
}

// Region returns the ISO region the number belongs to, or UnknownRegion.
func (n *Number) Region() string {
	region := phonenumbers.GetRegionCodeForNumber(n.pn)
	if region == "" {
		return UnknownRegion
	}
	return region
}

// RegionForCallingCode returns the main region for a country calling code.
func RegionForCallingCode(code int) (string, error) {
	region := phonenumbers.GetRegionCodeForCountryCode(code)
	if region == "" || region == UnknownRegion {
		return "", fmt.Errorf("%w: %d", ErrUnknownCallingCode, code)
	}
	return region, nil
}

// CallingCodeForRegion returns the country calling code for a canonical
// region.
func CallingCodeForRegion(region string) (int, error) {
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return code, nil
}

var supportedRegions = sync.OnceValue(phonenumbers.GetSupportedRegions)

// IsSupportedRegion reports whether the engine carries metadata for region.
// The lookup is case sensitive; callers canonicalise first.
func IsSupportedRegion(region string) bool {
	return supportedRegions()[region]
}

// ExampleNumber returns the engine's example number of type t for region.
func ExampleNumber(region string, t NumberType) (*Number, error) {
	et, err := NumberTypeToEngine(t)
	if err != nil {
		return nil, err
	}
	pn := phonenumbers.GetExampleNumberForType(region, et)
	if pn == nil {
		return nil, fmt.Errorf("%w: no %s example for %q", ErrUnknownRegion, t, region)
	}
	return &Number{pn: pn}, nil
}

// Version returns the module version of the linked engine.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return pinnedEngineVersion
	}
	for _, dep := range info.Deps {
		if dep.Path != enginePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}
	return pinnedEngineVersion
}
