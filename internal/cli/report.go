package cli

import (
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// report collects every view of one number. err is set when the number
// could not be parsed; the other fields are then empty.
type report struct {
	Input         string `json:"input"`
	Valid         bool   `json:"valid"`
	Possible      bool   `json:"possible"`
	Type          string `json:"type,omitempty"`
	Region        string `json:"region,omitempty"`
	CountryCode   int32  `json:"country_code,omitempty"`
	E164          string `json:"e164,omitempty"`
	International string `json:"international,omitempty"`
	National      string `json:"national,omitempty"`
	RFC3966       string `json:"rfc3966,omitempty"`
	Error         string `json:"error,omitempty"`

	err error
}

func analyze(eng *phonenumber.Engine, number, region string) report {
	rep := report{Input: number}
	fail := func(err error) report {
		return report{Input: number, Error: err.Error(), err: err}
	}

	info, err := eng.RegionInfo(number, region)
	if err != nil {
		return fail(err)
	}
	rep.Region = info.RegionCode
	rep.CountryCode = info.CountryCallingCode
	rep.National = info.FormattedNumber

	for _, v := range []struct {
		style phonenumber.Format
		dst   *string
	}{
		{phonenumber.E164, &rep.E164},
		{phonenumber.International, &rep.International},
		{phonenumber.RFC3966, &rep.RFC3966},
	} {
		if *v.dst, err = eng.Format(number, region, v.style); err != nil {
			return fail(err)
		}
	}

	t, err := eng.NumberType(number, region)
	if err != nil {
		return fail(err)
	}
	rep.Type = t.String()

	if rep.Valid, err = eng.IsValid(number, region); err != nil {
		return fail(err)
	}
	if rep.Possible, err = eng.IsPossible(number, region); err != nil {
		return fail(err)
	}
	return rep
}

func (r report) fields() []field {
	return []field{
		{"e164", r.E164},
		{"international", r.International},
		{"national", r.National},
		{"rfc3966", r.RFC3966},
		{"region", r.Region},
		{"country code", r.CountryCode},
		{"type", r.Type},
		{"valid", r.Valid},
		{"possible", r.Possible},
	}
}
