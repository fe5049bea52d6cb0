//go:build !(darwin || linux)

package abiclient

import (
	"fmt"
	"runtime"
)

// Client is unavailable on this platform.
type Client struct{}

// Open always fails on this platform.
func Open(string) (*Client, error) {
	return nil, fmt.Errorf("%w: GOOS=%s", ErrUnsupported, runtime.GOOS)
}

func (c *Client) Path() string { return "" }

func (c *Client) Close() error { return nil }

// RunConformance reports nothing on this platform.
func RunConformance(*Client) []CheckResult { return nil }
