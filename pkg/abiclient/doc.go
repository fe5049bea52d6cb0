// Package abiclient loads a shared library exposing the drphonenumber C ABI
// and calls it from Go without cgo.
//
// The library may be this repository's c-shared build or one from another
// toolchain (the Rust build of the same ABI, for example). The package backs
// the "drphone conformance" command, which checks such a library against the
// behaviour of libdrphonenumber.
//
// The library path is taken from the argument to Open, then from
// $DRPHONENUMBER_LIB, then from the platform's default name.
package abiclient
