// Package cli implements the drphone command line: phone-number
// formatting, classification and lookup over pkg/phonenumber, plus a
// conformance runner for other builds of the C library.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/drlibphonenumber/dr-libphonenumber-go/internal/cli/ui"
	"github.com/drlibphonenumber/dr-libphonenumber-go/internal/config"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

var (
	buildCommit = "none"
	buildDate   = "unknown"
)

// SetVersion is called from main to inject build-time version info. An
// empty version keeps the library default.
func SetVersion(version, commit, date string) {
	if version != "" && version != "dev" {
		phonenumber.Version = version
	}
	buildCommit = commit
	buildDate = date
}

// NewRootCmd builds the drphone command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drphone",
		Short: "Format, classify and validate phone numbers",
		Long: `drphone parses phone numbers with libphonenumber metadata and prints
them in E.164, international, national or RFC 3966 style.

Numbers without a leading "+" need a region:
  drphone format 0129602189 --region MY --style international
  drphone info +60129602189`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a drphonenumber TOML config (default $DRPHONENUMBER_CONFIG)")
	pf.StringP("region", "r", "", "ISO 3166-1 region used for numbers without a country code")
	pf.StringP("output", "o", "table", "Output format: table or json")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newFormatCmd(),
		newTypeCmd(),
		newValidCmd(),
		newRegionCmd(),
		newCountryCodeCmd(),
		newInfoCmd(),
		newExampleCmd(),
		newBatchCmd(),
		newConformanceCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs drphone with args, writing to stdout and stderr. It returns
// the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprint(stderr, ui.NewPrinter(stderr).FormatError(err.Error(), hintsFor(err)...))
		return 1
	}
	return 0
}

// loadConfig resolves configuration from the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	return config.Load(path, config.Overrides{LogLevel: level})
}

// newEngine builds an engine from configuration. Logs go to stderr.
func newEngine(cmd *cobra.Command) (*phonenumber.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return phonenumber.New(cfg.EngineConfig(log))
}

func regionFlag(cmd *cobra.Command) string {
	r, _ := cmd.Flags().GetString("region")
	return r
}
