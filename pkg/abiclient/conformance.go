//go:build darwin || linux

package abiclient

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// Reference scenario shared by the checks.
const (
	refNumber   = "0129602189"
	refRegion   = "MY"
	refE164     = "+60129602189"
	refNational = "012-960 2189"
)

var refStyles = map[phonenumber.Format]string{
	phonenumber.E164:          refE164,
	phonenumber.International: "+60 12-960 2189",
	phonenumber.National:      refNational,
	phonenumber.RFC3966:       "tel:+60-12-960-2189",
}

type check struct {
	name string
	run  func(*Client) error
}

var checks = []check{
	{"format/styles", checkFormatStyles},
	{"format/region case", checkRegionCase},
	{"format/e164 round trip", checkE164RoundTrip},
	{"format/out-of-range style", checkOutOfRangeStyle},
	{"getNumberType/mobile", checkNumberType},
	{"getRegionCodeForCountryCode", checkRegionCode},
	{"getRegionInfo", checkRegionInfo},
	{"isValidPhoneNumber", checkIsValid},
	{"unknown region sentinels", checkUnknownRegion},
	{"null input sentinels", checkNullInputs},
	{"free null", checkFreeNull},
	{"result entry points", checkResults},
	{"concurrent calls", checkConcurrent},
	{"allocation balance", checkAllocationBalance},
}

// RunConformance runs every check against c, in order. Checks that need an
// optional entry point the library lacks are reported as skipped.
func RunConformance(c *Client) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, chk := range checks {
		res := CheckResult{Name: chk.name}
		if err := chk.run(c); err != nil {
			if errors.Is(err, ErrUnsupported) {
				res.Skipped = true
				res.Detail = err.Error()
			} else {
				res.Err = err
				res.Detail = err.Error()
			}
		}
		results = append(results, res)
	}
	return results
}

func expectEqual[T comparable](what string, want, got T) error {
	if want != got {
		return fmt.Errorf("%s: want %v, got %v", what, want, got)
	}
	return nil
}

func checkFormatStyles(c *Client) error {
	for style, want := range refStyles {
		got, err := c.Format(refNumber, refRegion, style)
		if err != nil {
			return fmt.Errorf("%s: %w", style, err)
		}
		if err := expectEqual(style.String(), want, got); err != nil {
			return err
		}
	}
	return nil
}

func checkRegionCase(c *Client) error {
	got, err := c.Format(refNumber, "my", phonenumber.E164)
	if err != nil {
		return err
	}
	return expectEqual(`region "my"`, refE164, got)
}

func checkE164RoundTrip(c *Client) error {
	got, err := c.Format(refE164, "", phonenumber.E164)
	if err != nil {
		return err
	}
	return expectEqual("empty region", refE164, got)
}

func checkOutOfRangeStyle(c *Client) error {
	f, release, err := c.funcs()
	if err != nil {
		return err
	}
	defer release()

	for _, style := range []int32{-1, 4, 1 << 20} {
		if p := f.format(cString(refNumber), cString(refRegion), style); p != 0 {
			f.freeString(p)
			return fmt.Errorf("style %d: want NULL, got a string", style)
		}
	}
	return nil
}

func checkNumberType(c *Client) error {
	got, err := c.NumberType(refNumber, refRegion)
	if err != nil {
		return err
	}
	return expectEqual("type", phonenumber.Mobile, got)
}

func checkRegionCode(c *Client) error {
	for code, want := range map[int32]string{60: "MY", 1: "US"} {
		got, err := c.RegionCodeForCountryCode(code)
		if err != nil {
			return fmt.Errorf("code %d: %w", code, err)
		}
		if err := expectEqual(fmt.Sprintf("code %d", code), want, got); err != nil {
			return err
		}
	}
	if _, err := c.RegionCodeForCountryCode(999); !errors.Is(err, ErrFailed) {
		return fmt.Errorf("code 999: want NULL, got %v", err)
	}
	return nil
}

func checkRegionInfo(c *Client) error {
	got, err := c.RegionInfo(refNumber, refRegion)
	if err != nil {
		return err
	}
	return expectEqual("RegionInfo", RegionInfo{
		CountryCallingCode: 60,
		RegionCode:         refRegion,
		NationalNumber:     129602189,
		FormattedNumber:    refNational,
	}, got)
}

func checkIsValid(c *Client) error {
	ok, err := c.IsValid(refNumber, refRegion)
	if err != nil {
		return err
	}
	return expectEqual("valid", true, ok)
}

func checkUnknownRegion(c *Client) error {
	if _, err := c.Format(refNumber, "ZZ", phonenumber.E164); !errors.Is(err, ErrFailed) {
		return fmt.Errorf("format: want NULL, got %v", err)
	}
	if t, _ := c.NumberType(refNumber, "ZZ"); t != phonenumber.Unknown {
		return fmt.Errorf("getNumberType: want Unknown, got %s", t)
	}
	if _, err := c.RegionInfo(refNumber, "ZZ"); !errors.Is(err, ErrFailed) {
		return fmt.Errorf("getRegionInfo: want NULL, got %v", err)
	}
	if ok, _ := c.IsValid(refNumber, "ZZ"); ok {
		return errors.New("isValidPhoneNumber: want false")
	}
	return nil
}

func checkNullInputs(c *Client) error {
	f, release, err := c.funcs()
	if err != nil {
		return err
	}
	defer release()

	if p := f.format(nil, cString(refRegion), 0); p != 0 {
		f.freeString(p)
		return errors.New("format(NULL, ...): want NULL")
	}
	if t := f.getNumberType(nil, cString(refRegion)); t != int32(phonenumber.Unknown) {
		return fmt.Errorf("getNumberType(NULL, ...): want %d, got %d", phonenumber.Unknown, t)
	}
	if p := f.getRegionInfo(cString(refNumber), nil); p != 0 {
		f.freeRegionInfo(p)
		return errors.New("getRegionInfo(..., NULL): want NULL")
	}
	if f.isValidPhoneNumber(nil, nil) {
		return errors.New("isValidPhoneNumber(NULL, NULL): want false")
	}
	return nil
}

func checkFreeNull(c *Client) error {
	f, release, err := c.funcs()
	if err != nil {
		return err
	}
	defer release()

	f.freeString(0)
	f.freeRegionInfo(0)
	if f.freeResult != nil {
		f.freeResult(0)
	}
	if f.freeMemory != nil {
		f.freeMemory(0)
	}
	return nil
}

func checkResults(c *Client) error {
	if !c.HasResultAPI() {
		return fmt.Errorf("%w: no *Result entry points", ErrUnsupported)
	}

	s, err := c.FormatResult(refNumber, refRegion, int32(phonenumber.National))
	if err != nil {
		return err
	}
	if err := expectEqual("formatResult", refNational, s); err != nil {
		return err
	}

	var libErr *LibraryError
	if _, err := c.FormatResult(refNumber, "ZZ", 0); !errors.As(err, &libErr) || libErr.Message == "" {
		return fmt.Errorf("formatResult with ZZ: want an error message, got %v", err)
	}
	if _, err := c.NumberTypeResult(refNumber, "ZZ"); !errors.As(err, &libErr) {
		return fmt.Errorf("getNumberTypeResult with ZZ: want an error message, got %v", err)
	}
	if t, err := c.NumberTypeResult(refNumber, refRegion); err != nil || t != phonenumber.Mobile {
		return fmt.Errorf("getNumberTypeResult: want Mobile, got %s (%v)", t, err)
	}
	if _, err := c.RegionCodeForCountryCodeResult(999); !errors.As(err, &libErr) {
		return fmt.Errorf("getRegionCodeForCountryCodeResult(999): want an error message, got %v", err)
	}
	if info, err := c.RegionInfoResult(refNumber, refRegion); err != nil || info.CountryCallingCode != 60 {
		return fmt.Errorf("getRegionInfoResult: got %+v (%v)", info, err)
	}
	if ok, err := c.IsValidResult(refNumber, refRegion); err != nil || !ok {
		return fmt.Errorf("isValidPhoneNumberResult: got %v (%v)", ok, err)
	}
	return nil
}

func checkConcurrent(c *Client) error {
	var g errgroup.Group
	g.SetLimit(8)
	for i := 0; i < 64; i++ {
		style := phonenumber.Format(i % 4)
		g.Go(func() error {
			got, err := c.Format(refNumber, refRegion, style)
			if err != nil {
				return err
			}
			return expectEqual(style.String(), refStyles[style], got)
		})
	}
	return g.Wait()
}

func checkAllocationBalance(c *Client) error {
	before, err := c.LiveAllocations()
	if err != nil {
		return err
	}
	for style := range refStyles {
		if _, err := c.Format(refNumber, refRegion, style); err != nil {
			return err
		}
	}
	if _, err := c.RegionInfo(refNumber, refRegion); err != nil {
		return err
	}
	if c.HasResultAPI() {
		_, _ = c.FormatResult(refNumber, "ZZ", 0)
	}
	after, err := c.LiveAllocations()
	if err != nil {
		return err
	}
	return expectEqual("live allocations", before, after)
}
