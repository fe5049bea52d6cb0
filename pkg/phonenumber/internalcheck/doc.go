// Package internalcheck holds source-level policy tests for the C boundary
// and the packages behind it.
//
// It contains only tests. They load the repository's own packages with
// golang.org/x/tools/go/packages and fail when a file breaks a rule the
// compiler cannot enforce: every exported C entry point must defer the panic
// guard first, every allocating entry point needs a deallocator, and raw
// phone numbers must not reach log records or error messages.
package internalcheck
