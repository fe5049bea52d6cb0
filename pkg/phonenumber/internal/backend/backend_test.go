package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/internal/backend"
)

func TestParseMalaysianMobile(t *testing.T) {
	n, err := backend.Parse("0129602189", "MY")
	require.NoError(t, err)

	assert.Equal(t, int32(60), n.CountryCode())
	assert.Equal(t, uint64(129602189), n.NationalNumber())
	assert.Equal(t, "MY", n.Region())
	assert.Equal(t, backend.Mobile, n.Type())
	assert.True(t, n.IsValid())
	assert.True(t, n.IsPossible())

	styles := map[backend.Format]string{
		backend.E164:          "+60129602189",
		backend.International: "+60 12-960 2189",
		backend.National:      "012-960 2189",
		backend.RFC3966:       "tel:+60-12-960-2189",
	}
	for f, want := range styles {
		got, err := n.Format(f)
		require.NoError(t, err)
		assert.Equal(t, want, got, f.String())
	}

	_, err = n.Format(backend.Format(7))
	assert.ErrorIs(t, err, backend.ErrUnknownFormat)
}

func TestParseWithUnknownRegion(t *testing.T) {
	_, err := backend.Parse("0129602189", backend.UnknownRegion)
	assert.ErrorIs(t, err, backend.ErrUnknownRegion)

	n, err := backend.Parse("+60129602189", backend.UnknownRegion)
	require.NoError(t, err)
	assert.Equal(t, "MY", n.Region())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := backend.Parse("not a number", "MY")
	assert.ErrorIs(t, err, backend.ErrParse)
}

func TestRegionForCallingCode(t *testing.T) {
	region, err := backend.RegionForCallingCode(60)
	require.NoError(t, err)
	assert.Equal(t, "MY", region)

	region, err = backend.RegionForCallingCode(1)
	require.NoError(t, err)
	assert.Equal(t, "US", region)

	_, err = backend.RegionForCallingCode(999)
	assert.ErrorIs(t, err, backend.ErrUnknownCallingCode)
	_, err = backend.RegionForCallingCode(-5)
	assert.ErrorIs(t, err, backend.ErrUnknownCallingCode)
}

func TestCallingCodeForRegion(t *testing.T) {
	code, err := backend.CallingCodeForRegion("MY")
	require.NoError(t, err)
	assert.Equal(t, 60, code)

	_, err = backend.CallingCodeForRegion(backend.UnknownRegion)
	assert.ErrorIs(t, err, backend.ErrUnknownRegion)
}

func TestIsSupportedRegion(t *testing.T) {
	assert.True(t, backend.IsSupportedRegion("MY"))
	assert.True(t, backend.IsSupportedRegion("US"))
	assert.False(t, backend.IsSupportedRegion("my"))
	assert.False(t, backend.IsSupportedRegion(backend.UnknownRegion))
	assert.False(t, backend.IsSupportedRegion("QQ"))
}

func TestExampleNumber(t *testing.T) {
	n, err := backend.ExampleNumber("MY", backend.Mobile)
	require.NoError(t, err)
	assert.Equal(t, int32(60), n.CountryCode())
	assert.Equal(t, backend.Mobile, n.Type())

	_, err = backend.ExampleNumber("QQ", backend.Mobile)
	assert.ErrorIs(t, err, backend.ErrUnknownRegion)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, backend.Version())
}
