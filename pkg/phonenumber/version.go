package phonenumber

import "github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/internal/backend"

// Version is the wrapper's semantic version, overridden at build time with
// -ldflags "-X github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber.Version=v1.2.3".
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// EngineVersion returns the module version of the linked numbering-plan
// engine.
func EngineVersion() string {
	return backend.Version()
}

// VersionString combines both versions, e.g.
// "v1.2.3 (phonenumbers v1.6.10)".
func VersionString() string {
	return WrapperVersion() + " (phonenumbers " + EngineVersion() + ")"
}
