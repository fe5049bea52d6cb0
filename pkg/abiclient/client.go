//go:build darwin || linux

package abiclient

import (
	"fmt"
	"sync"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// RegionInfo is the Go copy of a C RegionInfo.
type RegionInfo = phonenumber.RegionInfo

// Client is a loaded library. Its methods copy every returned value into Go
// memory and free the library's allocation before returning. A Client is
// safe for concurrent use if the library is.
type Client struct {
	path   string
	mu     sync.RWMutex
	handle uintptr
	ffi    *ffiType
}

// Open loads the library at path. An empty path selects $DRPHONENUMBER_LIB
// or the platform default.
func Open(path string) (*Client, error) {
	if path == "" {
		p, err := defaultLibraryPath()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		path = p
	}
	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	f, err := load(handle)
	if err != nil {
		_ = dlclose(handle)
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return &Client{path: path, handle: handle, ffi: f}, nil
}

// Path returns the path the library was loaded from.
func (c *Client) Path() string {
	return c.path
}

// Close unloads the library. Pointers obtained from it become invalid.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ffi == nil {
		return nil
	}
	c.ffi = nil
	return dlclose(c.handle)
}

// funcs returns the entry points, holding the read lock until release is
// called.
func (c *Client) funcs() (*ffiType, func(), error) {
	c.mu.RLock()
	if c.ffi == nil {
		c.mu.RUnlock()
		return nil, nil, ErrClosed
	}
	return c.ffi, c.mu.RUnlock, nil
}

// HasResultAPI reports whether the library exports the *Result entry points.
func (c *Client) HasResultAPI() bool {
	f, release, err := c.funcs()
	if err != nil {
		return false
	}
	defer release()
	return f.formatResult != nil && f.freeResult != nil
}

func (c *Client) Format(number, region string, style phonenumber.Format) (string, error) {
	f, release, err := c.funcs()
	if err != nil {
		return "", err
	}
	defer release()

	p := f.format(cString(number), cString(region), int32(style))
	if p == 0 {
		return "", fmt.Errorf("%w: format", ErrFailed)
	}
	defer f.freeString(p)
	return goString(p), nil
}

// NumberType returns the library's classification. Failures read as
// phonenumber.Unknown, as they do over the C ABI.
func (c *Client) NumberType(number, region string) (phonenumber.NumberType, error) {
	f, release, err := c.funcs()
	if err != nil {
		return phonenumber.Unknown, err
	}
	defer release()

	return phonenumber.NumberTypeFromOrdinal(int(f.getNumberType(cString(number), cString(region)))), nil
}

func (c *Client) RegionCodeForCountryCode(code int32) (string, error) {
	f, release, err := c.funcs()
	if err != nil {
		return "", err
	}
	defer release()

	p := f.getRegionCodeForCountryCode(code)
	if p == 0 {
		return "", fmt.Errorf("%w: getRegionCodeForCountryCode(%d)", ErrFailed, code)
	}
	defer f.freeString(p)
	return goString(p), nil
}

func (c *Client) RegionInfo(number, region string) (RegionInfo, error) {
	f, release, err := c.funcs()
	if err != nil {
		return RegionInfo{}, err
	}
	defer release()

	p := f.getRegionInfo(cString(number), cString(region))
	if p == 0 {
		return RegionInfo{}, fmt.Errorf("%w: getRegionInfo", ErrFailed)
	}
	defer f.freeRegionInfo(p)
	return copyRegionInfo(p.regionInfo()), nil
}

func (c *Client) IsValid(number, region string) (bool, error) {
	f, release, err := c.funcs()
	if err != nil {
		return false, err
	}
	defer release()

	return f.isValidPhoneNumber(cString(number), cString(region)), nil
}

func (c *Client) CountryCodeForRegion(region string) (int32, error) {
	f, release, err := c.funcs()
	if err != nil {
		return 0, err
	}
	defer release()

	if f.getCountryCodeForRegion == nil {
		return 0, fmt.Errorf("%w: getCountryCodeForRegion", ErrUnsupported)
	}
	code := f.getCountryCodeForRegion(cString(region))
	if code == 0 {
		return 0, fmt.Errorf("%w: getCountryCodeForRegion(%q)", ErrFailed, region)
	}
	return code, nil
}

// Version returns the library's self-reported version.
func (c *Client) Version() (string, error) {
	f, release, err := c.funcs()
	if err != nil {
		return "", err
	}
	defer release()

	if f.getLibraryVersion == nil {
		return "", fmt.Errorf("%w: getLibraryVersion", ErrUnsupported)
	}
	p := f.getLibraryVersion()
	if p == 0 {
		return "", fmt.Errorf("%w: getLibraryVersion", ErrFailed)
	}
	defer f.freeString(p)
	return goString(p), nil
}

// LiveAllocations returns the library's count of unreleased pointers.
func (c *Client) LiveAllocations() (int64, error) {
	f, release, err := c.funcs()
	if err != nil {
		return 0, err
	}
	defer release()

	if f.liveAllocations == nil {
		return 0, fmt.Errorf("%w: liveAllocations", ErrUnsupported)
	}
	return f.liveAllocations(), nil
}

// FormatResult calls formatResult and returns the library's own error
// message as a *LibraryError.
func (c *Client) FormatResult(number, region string, style int32) (string, error) {
	f, release, err := c.funcs()
	if err != nil {
		return "", err
	}
	defer release()

	if f.formatResult == nil || f.freeResult == nil {
		return "", fmt.Errorf("%w: formatResult", ErrUnsupported)
	}
	p := f.formatResult(cString(number), cString(region), style)
	if p == 0 {
		return "", fmt.Errorf("%w: formatResult", ErrFailed)
	}
	defer f.freeResult(p)

	r := p.stringResult()
	if r.Error != 0 {
		return "", &LibraryError{Op: "formatResult", Message: goString(r.Error)}
	}
	return goString(r.Data), nil
}

// NumberTypeResult calls getNumberTypeResult. Unlike NumberType it
// distinguishes a failure from an Unknown classification.
func (c *Client) NumberTypeResult(number, region string) (phonenumber.NumberType, error) {
	f, release, err := c.funcs()
	if err != nil {
		return phonenumber.Unknown, err
	}
	defer release()

	if f.getNumberTypeResult == nil || f.freeResult == nil {
		return phonenumber.Unknown, fmt.Errorf("%w: getNumberTypeResult", ErrUnsupported)
	}
	p := f.getNumberTypeResult(cString(number), cString(region))
	if p == 0 {
		return phonenumber.Unknown, fmt.Errorf("%w: getNumberTypeResult", ErrFailed)
	}
	defer f.freeResult(p)

	r := p.numberTypeResult()
	if r.Error != 0 {
		return phonenumber.Unknown, &LibraryError{Op: "getNumberTypeResult", Message: goString(r.Error)}
	}
	return phonenumber.NumberTypeFromOrdinal(int(r.Data)), nil
}

func (c *Client) RegionCodeForCountryCodeResult(code int32) (string, error) {
	f, release, err := c.funcs()
	if err != nil {
		return "", err
	}
	defer release()

	if f.getRegionCodeForCountryCodeResult == nil || f.freeResult == nil {
		return "", fmt.Errorf("%w: getRegionCodeForCountryCodeResult", ErrUnsupported)
	}
	p := f.getRegionCodeForCountryCodeResult(code)
	if p == 0 {
		return "", fmt.Errorf("%w: getRegionCodeForCountryCodeResult", ErrFailed)
	}
	defer f.freeResult(p)

	r := p.stringResult()
	if r.Error != 0 {
		return "", &LibraryError{Op: "getRegionCodeForCountryCodeResult", Message: goString(r.Error)}
	}
	return goString(r.Data), nil
}

func (c *Client) RegionInfoResult(number, region string) (RegionInfo, error) {
	f, release, err := c.funcs()
	if err != nil {
		return RegionInfo{}, err
	}
	defer release()

	if f.getRegionInfoResult == nil || f.freeResult == nil {
		return RegionInfo{}, fmt.Errorf("%w: getRegionInfoResult", ErrUnsupported)
	}
	p := f.getRegionInfoResult(cString(number), cString(region))
	if p == 0 {
		return RegionInfo{}, fmt.Errorf("%w: getRegionInfoResult", ErrFailed)
	}
	defer f.freeResult(p)

	r := p.regionInfoResult()
	if r.Error != 0 {
		return RegionInfo{}, &LibraryError{Op: "getRegionInfoResult", Message: goString(r.Error)}
	}
	if r.Data == 0 {
		return RegionInfo{}, fmt.Errorf("%w: getRegionInfoResult returned neither data nor error", ErrFailed)
	}
	return copyRegionInfo(r.Data.regionInfo()), nil
}

func (c *Client) IsValidResult(number, region string) (bool, error) {
	f, release, err := c.funcs()
	if err != nil {
		return false, err
	}
	defer release()

	if f.isValidPhoneNumberResult == nil || f.freeResult == nil {
		return false, fmt.Errorf("%w: isValidPhoneNumberResult", ErrUnsupported)
	}
	p := f.isValidPhoneNumberResult(cString(number), cString(region))
	if p == 0 {
		return false, fmt.Errorf("%w: isValidPhoneNumberResult", ErrFailed)
	}
	defer f.freeResult(p)

	r := p.boolResult()
	if r.Error != 0 {
		return false, &LibraryError{Op: "isValidPhoneNumberResult", Message: goString(r.Error)}
	}
	return r.Data, nil
}

func copyRegionInfo(ri *regionInfo) RegionInfo {
	return RegionInfo{
		CountryCallingCode: ri.RegionCode,
		RegionCode:         goString(ri.CountryCode),
		NationalNumber:     ri.PhoneNumberValue,
		FormattedNumber:    goString(ri.FormattedNumber),
	}
}
