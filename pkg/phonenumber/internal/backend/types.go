package backend

// Format is an output style. The integer values are part of the C ABI and
// must never be renumbered.
type Format int

const (
	E164          Format = 0
	International Format = 1
	National      Format = 2
	RFC3966       Format = 3
)

func (f Format) String() string {
	switch f {
	case E164:
		return "E164"
	case International:
		return "International"
	case National:
		return "National"
	case RFC3966:
		return "RFC3966"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the defined output styles.
func (f Format) Valid() bool {
	return f >= E164 && f <= RFC3966
}

// NumberType is a number classification. The integer values are part of the
// C ABI and follow the order of the DrPhoneNumberType C header.
type NumberType int

const (
	FixedLine         NumberType = 0
	Mobile            NumberType = 1
	FixedLineOrMobile NumberType = 2
	TollFree          NumberType = 3
	PremiumRate       NumberType = 4
	SharedCost        NumberType = 5
	PersonalNumber    NumberType = 6
	Voip              NumberType = 7
	Pager             NumberType = 8
	Uan               NumberType = 9
	Emergency         NumberType = 10
	Voicemail         NumberType = 11
	ShortCode         NumberType = 12
	StandardRate      NumberType = 13
	Carrier           NumberType = 14
	NoInternational   NumberType = 15
	Unknown           NumberType = 16
)

var numberTypeNames = [...]string{
	FixedLine:         "FixedLine",
	Mobile:            "Mobile",
	FixedLineOrMobile: "FixedLineOrMobile",
	TollFree:          "TollFree",
	PremiumRate:       "PremiumRate",
	SharedCost:        "SharedCost",
	PersonalNumber:    "PersonalNumber",
	Voip:              "Voip",
	Pager:             "Pager",
	Uan:               "Uan",
	Emergency:         "Emergency",
	Voicemail:         "Voicemail",
	ShortCode:         "ShortCode",
	StandardRate:      "StandardRate",
	Carrier:           "Carrier",
	NoInternational:   "NoInternational",
	Unknown:           "Unknown",
}

func (t NumberType) String() string {
	if t < FixedLine || t > Unknown {
		return numberTypeNames[Unknown]
	}
	return numberTypeNames[t]
}

// NumberTypeFromOrdinal decodes an integer received across the boundary.
// Ordinals outside the table decode to Unknown.
func NumberTypeFromOrdinal(v int) NumberType {
	if v < int(FixedLine) || v > int(Unknown) {
		return Unknown
	}
	return NumberType(v)
}
