//go:build cgo

package main

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/logging"
)

// guard is deferred as the first statement of every exported function. It
// stops a panic from unwinding into C, runs onPanic to set the sentinel
// result and logs the failure. Inputs are logged as redacted.
func guard(op string, onPanic func()) {
	r := recover()
	if r == nil {
		return
	}
	onPanic()
	boundaryLogger().Error(context.Background(), "recovered panic at C boundary",
		"op", op, logging.Redacted("inputs"), "panic", fmt.Sprint(r),
		"stack", string(debug.Stack()))
}
