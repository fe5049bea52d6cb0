// Package phonenumber is the Go-side facade of the dr-libphonenumber
// boundary. It wraps the numbering-plan engine behind a small set of
// operations (format, classify, validate, region lookups) that report
// failures through one error taxonomy.
//
// The C ABI in cmd/libdrphonenumber is a thin marshalling layer over this
// package; Go programs can use it directly:
//
//	eng, err := phonenumber.New(phonenumber.Config{})
//	...
//	s, err := eng.Format("0129602189", "my", phonenumber.National)
//	// s == "012-960 2189"
//
// An Engine is immutable after New and safe for concurrent use.
package phonenumber
