package phonenumber

import (
	"fmt"
	"strings"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/internal/backend"
)

// UnknownRegion is the canonical "no region hint" value. Numbers parsed
// against it must carry their own country calling code ("+60...").
const UnknownRegion = backend.UnknownRegion

// NormalizeRegion canonicalises an ISO 3166-1 alpha-2 region code. Case and
// surrounding whitespace are ignored, so "my" and " MY" both yield "MY". An
// empty region yields UnknownRegion. Codes the engine has no metadata for
// fail with ErrUnrecognizedRegion.
func NormalizeRegion(region string) (string, error) {
	r := strings.TrimSpace(region)
	if r == "" {
		return UnknownRegion, nil
	}
	if len(r) != 2 || !isASCIILetter(r[0]) || !isASCIILetter(r[1]) {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedRegion, region)
	}
	r = strings.ToUpper(r)
	if r == UnknownRegion {
		return r, nil
	}
	if !backend.IsSupportedRegion(r) {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedRegion, region)
	}
	return r, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
