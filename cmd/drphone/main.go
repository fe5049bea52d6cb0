// Command drphone formats, classifies and validates phone numbers from the
// command line.
package main

import (
	"os"

	"github.com/drlibphonenumber/dr-libphonenumber-go/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
