package phonenumber_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

const (
	testNumber = "0129602189"
	testRegion = "MY"
)

func newEngine(t *testing.T, cfg phonenumber.Config) *phonenumber.Engine {
	t.Helper()
	eng, err := phonenumber.New(cfg)
	require.NoError(t, err)
	return eng
}

func TestFormatStyles(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	tests := []struct {
		style phonenumber.Format
		want  string
	}{
		{phonenumber.E164, "+60129602189"},
		{phonenumber.International, "+60 12-960 2189"},
		{phonenumber.National, "012-960 2189"},
		{phonenumber.RFC3966, "tel:+60-12-960-2189"},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got, err := eng.Format(testNumber, testRegion, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			lower, err := eng.Format(testNumber, strings.ToLower(testRegion), tt.style)
			require.NoError(t, err)
			assert.Equal(t, got, lower)
		})
	}
}

func TestFormatE164RoundTripWithoutRegion(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	e164, err := eng.Format(testNumber, testRegion, phonenumber.E164)
	require.NoError(t, err)

	again, err := eng.Format(e164, "", phonenumber.E164)
	require.NoError(t, err)
	assert.Equal(t, e164, again)

	national, err := eng.Format(e164, phonenumber.UnknownRegion, phonenumber.National)
	require.NoError(t, err)
	assert.Equal(t, "012-960 2189", national)
}

func TestFormatRejectsUnknownStyle(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})
	_, err := eng.Format(testNumber, testRegion, phonenumber.Format(4))
	assert.ErrorIs(t, err, phonenumber.ErrUnknownFormat)
}

func TestNumberType(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	typ, err := eng.NumberType(testNumber, testRegion)
	require.NoError(t, err)
	assert.Equal(t, phonenumber.Mobile, typ)

	typ, err = eng.NumberType(testNumber, "ZZ")
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)
	assert.Equal(t, phonenumber.Unknown, typ)
}

func TestIsValid(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	ok, err := eng.IsValid(testNumber, testRegion)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eng.IsValid("0100", testRegion)
	if err == nil {
		assert.False(t, ok)
	}

	ok, err = eng.IsValid(testNumber, "ZZ")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestIsPossible(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	ok, err := eng.IsPossible(testNumber, testRegion)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eng.IsPossible("+6012", "")
	if err == nil {
		assert.False(t, ok)
	}
}

func TestRegionLookups(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	region, err := eng.RegionCodeForCountryCode(60)
	require.NoError(t, err)
	assert.Equal(t, "MY", region)

	_, err = eng.RegionCodeForCountryCode(0)
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedCountryCode)

	code, err := eng.CountryCodeForRegion("my")
	require.NoError(t, err)
	assert.Equal(t, int32(60), code)

	_, err = eng.CountryCodeForRegion("ZZ")
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)
	_, err = eng.CountryCodeForRegion("")
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)
}

func TestRegionInfo(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	info, err := eng.RegionInfo(testNumber, testRegion)
	require.NoError(t, err)
	assert.Equal(t, phonenumber.RegionInfo{
		CountryCallingCode: 60,
		RegionCode:         "MY",
		NationalNumber:     129602189,
		FormattedNumber:    "012-960 2189",
	}, info)

	_, err = eng.RegionInfo(testNumber, "ZZ")
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)
}

func TestDefaultRegion(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{DefaultRegion: "my"})

	got, err := eng.Format(testNumber, "", phonenumber.E164)
	require.NoError(t, err)
	assert.Equal(t, "+60129602189", got)

	// An explicit region always wins over the default.
	_, err = eng.Format(testNumber, "ZZ", phonenumber.E164)
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)

	_, err = phonenumber.New(phonenumber.Config{DefaultRegion: "Atlantis"})
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)
}

func TestInputBounds(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{MaxInputLength: 16})
	assert.Equal(t, 16, eng.MaxInputLength())

	_, err := eng.Format(strings.Repeat("1", 17), testRegion, phonenumber.E164)
	assert.ErrorIs(t, err, phonenumber.ErrInputTooLong)

	_, err = eng.Format("012\xff9602189", testRegion, phonenumber.E164)
	assert.ErrorIs(t, err, phonenumber.ErrInvalidEncoding)

	_, err = phonenumber.New(phonenumber.Config{MaxInputLength: -1})
	assert.Error(t, err)
	_, err = phonenumber.New(phonenumber.Config{MaxInputLength: phonenumber.MaxInputLengthLimit + 1})
	assert.Error(t, err)
	top := newEngine(t, phonenumber.Config{MaxInputLength: phonenumber.MaxInputLengthLimit})
	assert.Equal(t, phonenumber.MaxInputLengthLimit, top.MaxInputLength())

	def := newEngine(t, phonenumber.Config{})
	assert.Equal(t, phonenumber.DefaultMaxInputLength, def.MaxInputLength())
}

func TestParseFailure(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})
	_, err := eng.Format("hello", testRegion, phonenumber.E164)
	assert.ErrorIs(t, err, phonenumber.ErrParseFailure)
}

func TestExampleNumber(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	s, err := eng.ExampleNumber("my", phonenumber.Mobile, phonenumber.E164)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "+60"), s)

	_, err = eng.ExampleNumber("QQ", phonenumber.Mobile, phonenumber.E164)
	assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion)
}

func TestEngineConcurrentUse(t *testing.T) {
	eng := newEngine(t, phonenumber.Config{})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := eng.Format(testNumber, testRegion, phonenumber.International)
			if err != nil {
				errs <- err
				return
			}
			if got != "+60 12-960 2189" {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
