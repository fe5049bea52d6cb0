package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/drlibphonenumber/dr-libphonenumber-go/internal/cli/ui"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

// field is one labelled value of table output.
type field struct {
	label string
	value any
}

// outputFormat returns the resolved output format from flags.
func outputFormat(cmd *cobra.Command) (string, error) {
	out, _ := cmd.Flags().GetString("output")
	switch out {
	case "", "table":
		return "table", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table or json)", out)
	}
}

// render writes v as indented JSON, or fields as a label/value table.
func render(cmd *cobra.Command, v any, fields []field) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(w, v)
	}
	p := ui.NewPrinter(w)
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s%v\n", p.Label.Render(f.label), f.value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// hintsFor suggests fixes for common failures.
func hintsFor(err error) []string {
	switch {
	case errors.Is(err, phonenumber.ErrUnrecognizedRegion):
		return []string{
			"pass a two-letter region: --region MY",
			"or give the number with its country code: +60129602189",
		}
	case errors.Is(err, phonenumber.ErrUnknownFormat):
		return []string{"use --style e164, international, national or rfc3966"}
	default:
		return nil
	}
}
