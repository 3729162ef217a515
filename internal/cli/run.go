package cli

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/ppiankov/factdash/internal/pipeline"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Collect claims and verify them in one pass",
	Long: `Run collects claims for the date range, then verifies every collected
claim and prints the verdict distribution.

Example:
  factdash run --start 2024-01-01 --end 2024-01-31 --export verified_claims.csv`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRangeFlags(runCmd)
	runCmd.Flags().StringVar(&exportPath, "export", "", "write the verified table to this CSV path")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	start, end, err := parseRange(startDate, endDate, time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := pipeline.NewPipeline(cfg)
	claims, err := collect(ctx, p, start, end)
	if err != nil || len(claims) == 0 {
		return err
	}

	return presentVerified(cmd, verifyClaims(ctx, p, claims), exportPath)
}
