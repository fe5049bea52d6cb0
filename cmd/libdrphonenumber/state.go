//go:build cgo

package main

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/drlibphonenumber/dr-libphonenumber-go/internal/config"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/logging"
)

// library is the process-wide state shared by every entry point. It is
// immutable after construction.
type library struct {
	log    logging.Logger
	engine *phonenumber.Engine
}

var (
	libOnce  sync.Once
	libState *library
)

// lib returns the shared state, loading configuration on first use.
func lib() *library {
	libOnce.Do(func() {
		libState = newLibrary(os.Stderr)
	})
	return libState
}

// boundaryLogger returns the shared logger, or a discarding one when the
// shared state could not be built because its construction panicked.
func boundaryLogger() logging.Logger {
	if l := lib(); l != nil && l.log != nil {
		return l.log
	}
	return logging.Discard()
}

// newLibrary never fails: a broken configuration is reported and replaced by
// the defaults so that callers still get working entry points.
func newLibrary(w io.Writer) *library {
	ctx := context.Background()

	cfg, cfgErr := config.Load("", config.Overrides{})
	if cfgErr != nil {
		cfg = config.Default()
	}

	log, err := cfg.NewLogger(w)
	if err != nil {
		log = logging.New(nil)
	}
	log = log.With("component", "libdrphonenumber")
	if cfgErr != nil {
		log.Error(ctx, "invalid configuration, using defaults", "error", cfgErr)
	}

	eng, err := phonenumber.New(cfg.EngineConfig(log))
	if err != nil {
		log.Error(ctx, "engine configuration rejected, using defaults", "error", err)
		eng, _ = phonenumber.New(phonenumber.Config{Logger: log})
	}

	return &library{log: log, engine: eng}
}
