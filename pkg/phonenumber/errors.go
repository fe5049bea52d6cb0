package phonenumber

import (
	"errors"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/internal/backend"
)

// Error taxonomy shared by the Go API and the C boundary. The C entry
// points flatten these into sentinel return values; the result-struct
// entry points surface err.Error() to the caller.
var (
	// ErrNullPointer reports a NULL input pointer.
	ErrNullPointer = errors.New("phonenumber: null pointer")

	// ErrInvalidEncoding reports input bytes that are not valid UTF-8, or
	// output that cannot be represented as a NUL-terminated string.
	ErrInvalidEncoding = errors.New("phonenumber: invalid encoding")

	// ErrInputTooLong reports input longer than the configured bound.
	ErrInputTooLong = errors.New("phonenumber: input too long")

	// ErrUnrecognizedRegion reports a region code the engine has no
	// metadata for, or a number whose region cannot be inferred.
	ErrUnrecognizedRegion = errors.New("phonenumber: unrecognized region")

	// ErrUnrecognizedCountryCode reports a country calling code that maps
	// to no region.
	ErrUnrecognizedCountryCode = errors.New("phonenumber: unrecognized country code")

	// ErrParseFailure reports a number the engine could not parse for the
	// given region.
	ErrParseFailure = errors.New("phonenumber: parse failure")

	// ErrUnknownFormat reports an output style outside the defined set.
	ErrUnknownFormat = errors.New("phonenumber: unknown format")
)

// remapError converts backend errors to the public taxonomy, keeping the
// engine's detail in the message.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, backend.ErrUnknownRegion):
		return wrap(ErrUnrecognizedRegion, err)
	case errors.Is(err, backend.ErrUnknownCallingCode):
		return wrap(ErrUnrecognizedCountryCode, err)
	case errors.Is(err, backend.ErrParse):
		return wrap(ErrParseFailure, err)
	case errors.Is(err, backend.ErrUnknownFormat):
		return wrap(ErrUnknownFormat, err)
	default:
		return err
	}
}

type wrappedError struct {
	kind  error
	cause error
}

func wrap(kind, cause error) error {
	return &wrappedError{kind: kind, cause: cause}
}

func (e *wrappedError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

// Unwrap exposes only the public sentinel so errors.Is(err, backend.X)
// stays an implementation detail.
func (e *wrappedError) Unwrap() error {
	return e.kind
}
