package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/pipeline"
	"github.com/ppiankov/factdash/internal/report"
	"github.com/spf13/cobra"
)

// defaultRangeDays is how far back collection reaches without --start
const defaultRangeDays = 30

var (
	startDate  string
	endDate    string
	outputPath string
	noTable    bool
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect rated claims stated within a date range",
	Long: `Collect pages through the fact-check listing, newest first, keeping claims
stated between --start and --end (inclusive). Collection stops at the first
claim older than --start, after 40 pages, or on the first fetch error.

The table is written to the configured output file (politifact_claims.csv).

Example:
  factdash collect --start 2024-01-01 --end 2024-01-31
  factdash collect --out january.csv`,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
	addRangeFlags(collectCmd)
	collectCmd.Flags().StringVar(&outputPath, "out", "", "output CSV path (default: collector.output_path)")
	collectCmd.Flags().BoolVar(&noTable, "no-table", false, "do not print the claims table")
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&startDate, "start", "", "start date YYYY-MM-DD (default: 30 days before --end)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date YYYY-MM-DD (default: today)")
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputPath != "" {
		cfg.Collector.OutputPath = outputPath
	}

	start, end, err := parseRange(startDate, endDate, time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := pipeline.NewPipeline(cfg)
	claims, err := collect(ctx, p, start, end)
	if err != nil {
		return err
	}

	if len(claims) > 0 && !noTable {
		report.RenderClaims(cmd.OutOrStdout(), claims)
	}
	return nil
}

// collect runs the collector with progress on stderr
func collect(ctx context.Context, p *pipeline.Pipeline, start, end time.Time) ([]model.ClaimRecord, error) {
	fmt.Fprintf(os.Stderr, "⚙️  Collecting claims from %s to %s...\n",
		start.Format(model.DateLayout), end.Format(model.DateLayout))

	result, err := p.Collect(ctx, start, end, func(pages, rows int) {
		if verbose {
			fmt.Fprintf(os.Stderr, "   page %d: %d claims so far\n", pages, rows)
		}
	})
	if err != nil && result == nil {
		return nil, fmt.Errorf("collect failed: %w", err)
	}

	if result.FetchErr != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Error fetching data: %v\n", result.FetchErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  %v\n", err)
	}

	if len(result.Claims) == 0 {
		fmt.Fprintln(os.Stderr, "No claims found for the selected period.")
		return nil, nil
	}

	fmt.Fprintf(os.Stderr, "✓ Collected %d claims from %d pages (%s)\n", len(result.Claims), result.Pages, result.Stop)
	if path := p.Config().Collector.OutputPath; path != "" && err == nil {
		fmt.Fprintf(os.Stderr, "✓ Saved %s\n", path)
	}
	return result.Claims, nil
}

// parseRange resolves --start/--end, defaulting to the defaultRangeDays days ending today
func parseRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	e := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if end != "" {
		d, err := time.Parse(model.DateLayout, end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end %q: want YYYY-MM-DD", end)
		}
		e = d
	}

	s := e.AddDate(0, 0, -defaultRangeDays)
	if start != "" {
		d, err := time.Parse(model.DateLayout, start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start %q: want YYYY-MM-DD", start)
		}
		s = d
	}

	if s.After(e) {
		return time.Time{}, time.Time{}, fmt.Errorf("--start %s is after --end %s", s.Format(model.DateLayout), e.Format(model.DateLayout))
	}
	return s, e, nil
}
