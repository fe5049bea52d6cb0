package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print drphone and engine versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": phonenumber.WrapperVersion(),
					"engine":  phonenumber.EngineVersion(),
					"commit":  buildCommit,
					"date":    buildDate,
				})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "drphone %s (commit: %s, built: %s)\n",
				phonenumber.VersionString(), buildCommit, buildDate)
			return err
		},
	}
}
