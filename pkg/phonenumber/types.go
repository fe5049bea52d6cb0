package phonenumber

import (
	"fmt"
	"strings"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/internal/backend"
)

// Format is an output style. Its integer value is part of the C ABI.
type Format = backend.Format

// NumberType is a number classification. Its integer value is part of the
// C ABI.
type NumberType = backend.NumberType

// Output styles.
const (
	E164          = backend.E164
	International = backend.International
	National      = backend.National
	RFC3966       = backend.RFC3966
)

// Number classifications.
const (
	FixedLine         = backend.FixedLine
	Mobile            = backend.Mobile
	FixedLineOrMobile = backend.FixedLineOrMobile
	TollFree          = backend.TollFree
	PremiumRate       = backend.PremiumRate
	SharedCost        = backend.SharedCost
	PersonalNumber    = backend.PersonalNumber
	Voip              = backend.Voip
	Pager             = backend.Pager
	Uan               = backend.Uan
	Emergency         = backend.Emergency
	Voicemail         = backend.Voicemail
	ShortCode         = backend.ShortCode
	StandardRate      = backend.StandardRate
	Carrier           = backend.Carrier
	NoInternational   = backend.NoInternational
	Unknown           = backend.Unknown
)

// FormatFromOrdinal decodes a style received as a bare integer. It never
// indexes a table with v; out-of-range values report ok == false.
func FormatFromOrdinal(v int) (Format, bool) {
	f := Format(v)
	if !f.Valid() {
		return 0, false
	}
	return f, true
}

// NumberTypeFromOrdinal decodes a classification received as a bare
// integer. Unrecognised values decode to Unknown.
func NumberTypeFromOrdinal(v int) NumberType {
	return backend.NumberTypeFromOrdinal(v)
}

// ParseFormat parses a style name as typed by a user ("e164",
// "international", "intl", "national", "rfc3966"). Matching is case
// insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e164", "e.164":
		return E164, nil
	case "international", "intl":
		return International, nil
	case "national":
		return National, nil
	case "rfc3966", "tel":
		return RFC3966, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ParseNumberType parses a classification name such as "mobile" or
// "TollFree". Matching is case insensitive and ignores '_' and '-'.
func ParseNumberType(s string) (NumberType, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	for v := int(FixedLine); v <= int(Unknown); v++ {
		t := NumberType(v)
		if strings.ToLower(t.String()) == key {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown number type %q", s)
}
