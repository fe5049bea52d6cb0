package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drlibphonenumber/dr-libphonenumber-go/internal/cli/ui"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/abiclient"
)

func newConformanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Check a build of the C library against the reference behaviour",
		Long: `conformance loads a shared library exposing the drphonenumber C ABI and
runs the reference checks against it: formatting, classification, region
lookup, failure sentinels and memory ownership.`,
		Example: `  drphone conformance --lib ./target/release/libdr_libphonenumber.so`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("lib")
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			client, err := abiclient.Open(path)
			if err != nil {
				return err
			}
			defer client.Close()

			results := abiclient.RunConformance(client)
			passed, failed, skipped := abiclient.Summary(results)

			if format == "json" {
				if err := writeJSON(cmd.OutOrStdout(), map[string]any{
					"library": client.Path(),
					"checks":  results,
					"passed":  passed,
					"failed":  failed,
					"skipped": skipped,
				}); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				p := ui.NewPrinter(w)
				fmt.Fprintf(w, "%s %s\n\n", p.Bold.Render("Library:"), client.Path())
				for _, r := range results {
					fmt.Fprintf(w, "  %s %s", p.Status(r.Passed(), r.Skipped), r.Name)
					if r.Detail != "" {
						fmt.Fprintf(w, " %s", p.Hint.Render(r.Detail))
					}
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped\n", passed, failed, skipped)
			}

			if failed > 0 {
				return fmt.Errorf("%d conformance check(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().String("lib", "", "Path to the shared library (default $DRPHONENUMBER_LIB)")
	return cmd
}
