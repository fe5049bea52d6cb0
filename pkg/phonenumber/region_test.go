package phonenumber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"MY", "MY", false},
		{"my", "MY", false},
		{"mY", "MY", false},
		{" us ", "US", false},
		{"", phonenumber.UnknownRegion, false},
		{"   ", phonenumber.UnknownRegion, false},
		{"zz", phonenumber.UnknownRegion, false},
		{"QQ", "", true},
		{"MYS", "", true},
		{"M", "", true},
		{"1A", "", true},
		{"é1", "", true},
	}

	for _, tt := range tests {
		got, err := phonenumber.NormalizeRegion(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, phonenumber.ErrUnrecognizedRegion, tt.in)
			continue
		}
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
