package phonenumber

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/internal/backend"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/logging"
)

// DefaultMaxInputLength matches the engine's own cap on parseable input.
const DefaultMaxInputLength = 250

// MaxInputLengthLimit is the largest accepted MaxInputLength.
const MaxInputLengthLimit = 1 << 16

// Config expresses the knobs of an Engine.
type Config struct {
	// DefaultRegion is used when a caller passes an empty region. Leaving
	// it empty means such numbers must carry a country calling code.
	DefaultRegion string

	// MaxInputLength bounds the byte length of a number. Zero selects
	// DefaultMaxInputLength.
	MaxInputLength int

	// Logger receives debug records about rejected input. Nil discards.
	Logger logging.Logger
}

// RegionInfo aggregates what is known about a number's region. The comments
// give the matching field of the C RegionInfo struct.
type RegionInfo struct {
	// CountryCallingCode is the calling code, e.g. 60 (C: region_code).
	CountryCallingCode int32
	// RegionCode is the ISO region, e.g. "MY" (C: country_code).
	RegionCode string
	// NationalNumber is the national significant number, e.g. 129602189
	// (C: phone_number_value).
	NationalNumber int64
	// FormattedNumber is the number in National style (C: formatted_number).
	FormattedNumber string
}

// Engine runs phone-number operations against the numbering-plan engine.
type Engine struct {
	defaultRegion  string
	maxInputLength int
	log            logging.Logger
}

// New validates cfg and returns an Engine.
func New(cfg Config) (*Engine, error) {
	e := &Engine{
		defaultRegion:  UnknownRegion,
		maxInputLength: cfg.MaxInputLength,
		log:            cfg.Logger,
	}
	if e.maxInputLength < 0 || e.maxInputLength > MaxInputLengthLimit {
		return nil, fmt.Errorf("max input length must be between 0 and %d, got %d",
			MaxInputLengthLimit, cfg.MaxInputLength)
	}
	if e.maxInputLength == 0 {
		e.maxInputLength = DefaultMaxInputLength
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	if cfg.DefaultRegion != "" {
		r, err := NormalizeRegion(cfg.DefaultRegion)
		if err != nil {
			return nil, fmt.Errorf("default region: %w", err)
		}
		e.defaultRegion = r
	}
	return e, nil
}

// MaxInputLength returns the effective input bound.
func (e *Engine) MaxInputLength() int {
	return e.maxInputLength
}

// Format parses number with the region hint and renders it in style f.
func (e *Engine) Format(number, region string, f Format) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	n, err := e.parse(number, region)
	if err != nil {
		return "", err
	}
	s, err := n.Format(f)
	if err != nil {
		return "", remapError(err)
	}
	return s, nil
}

// NumberType classifies number. On error the returned type is Unknown; an
// Unknown result with a nil error means the engine could not classify a
// well-formed number.
func (e *Engine) NumberType(number, region string) (NumberType, error) {
	n, err := e.parse(number, region)
	if err != nil {
		return Unknown, err
	}
	return n.Type(), nil
}

// IsValid reports whether number is a valid number. Parse failures are
// returned as errors; a well-formed but invalid number is (false, nil).
func (e *Engine) IsValid(number, region string) (bool, error) {
	n, err := e.parse(number, region)
	if err != nil {
		return false, err
	}
	return n.IsValid(), nil
}

// IsPossible reports whether number has a plausible length for its region.
// It is a cheaper and looser test than IsValid.
func (e *Engine) IsPossible(number, region string) (bool, error) {
	n, err := e.parse(number, region)
	if err != nil {
		return false, err
	}
	return n.IsPossible(), nil
}

// RegionCodeForCountryCode returns the main ISO region of a country calling
// code, e.g. "MY" for 60 and "US" for 1.
func (e *Engine) RegionCodeForCountryCode(code int32) (string, error) {
	region, err := backend.RegionForCallingCode(int(code))
	if err != nil {
		return "", remapError(err)
	}
	return region, nil
}

// CountryCodeForRegion returns the country calling code of region.
func (e *Engine) CountryCodeForRegion(region string) (int32, error) {
	r, err := NormalizeRegion(region)
	if err != nil {
		return 0, err
	}
	if r == UnknownRegion {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedRegion, region)
	}
	code, err := backend.CallingCodeForRegion(r)
	if err != nil {
		return 0, remapError(err)
	}
	return int32(code), nil
}

// RegionInfo parses number and collects its calling code, region, national
// number and National-style rendering.
func (e *Engine) RegionInfo(number, region string) (RegionInfo, error) {
	n, err := e.parse(number, region)
	if err != nil {
		return RegionInfo{}, err
	}
	national, err := n.Format(National)
	if err != nil {
		return RegionInfo{}, remapError(err)
	}

	regionCode := n.Region()
	if regionCode == UnknownRegion {
		regionCode, err = backend.RegionForCallingCode(int(n.CountryCode()))
		if err != nil {
			return RegionInfo{}, remapError(err)
		}
	}

	nsn := n.NationalNumber()
	if nsn > math.MaxInt64 {
		return RegionInfo{}, fmt.Errorf("%w: national number out of range", ErrParseFailure)
	}

	return RegionInfo{
		CountryCallingCode: n.CountryCode(),
		RegionCode:         regionCode,
		NationalNumber:     int64(nsn),
		FormattedNumber:    national,
	}, nil
}

// ExampleNumber returns the engine's example number of type t for region,
// rendered in style f.
func (e *Engine) ExampleNumber(region string, t NumberType, f Format) (string, error) {
	r, err := NormalizeRegion(region)
	if err != nil {
		return "", err
	}
	n, err := backend.ExampleNumber(r, t)
	if err != nil {
		return "", remapError(err)
	}
	s, err := n.Format(f)
	if err != nil {
		return "", remapError(err)
	}
	return s, nil
}

func (e *Engine) parse(number, region string) (*backend.Number, error) {
	if len(number) > e.maxInputLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLong, len(number), e.maxInputLength)
	}
	if !utf8.ValidString(number) || !utf8.ValidString(region) {
		return nil, ErrInvalidEncoding
	}

	r, err := e.resolveRegion(region)
	if err != nil {
		return nil, err
	}

	n, err := backend.Parse(number, r)
	if err != nil {
		e.log.Debug(context.Background(), "engine rejected number",
			logging.Number("number", number), "region", r, "error", err)
		return nil, remapError(err)
	}
	return n, nil
}

func (e *Engine) resolveRegion(region string) (string, error) {
	if strings.TrimSpace(region) == "" {
		return e.defaultRegion, nil
	}
	return NormalizeRegion(region)
}
