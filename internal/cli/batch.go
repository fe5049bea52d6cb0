package cli

import (
	"bufio"
	"context"
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze numbers read from stdin, one per line",
		Long: `batch reads phone numbers from stdin, one per line, and prints one row
per number in input order. Blank lines and lines starting with '#' are
skipped. Numbers that fail to parse are reported inline.`,
		Example: `  printf '0129602189\n+14155550123\n' | drphone batch --region MY`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}

			numbers, err := readNumbers(cmd)
			if err != nil {
				return err
			}
			reports, err := analyzeAll(cmd.Context(), eng, numbers, regionFlag(cmd), jobs)
			if err != nil {
				return err
			}

			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tE164\tREGION\tTYPE\tVALID\tERROR")
			for _, r := range reports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n", r.Input, r.E164, r.Region, r.Type, r.Valid, r.Error)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Numbers analyzed concurrently")
	return cmd
}

func readNumbers(cmd *cobra.Command) ([]string, error) {
	var numbers []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return numbers, nil
}

// analyzeAll runs analyze over numbers with at most jobs in flight. The
// result order matches the input order.
func analyzeAll(ctx context.Context, eng *phonenumber.Engine, numbers []string, region string, jobs int) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}
	reports := make([]report, len(numbers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, n := range numbers {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = analyze(eng, n, region)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
