package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/pipeline"
	"github.com/ppiankov/factdash/internal/report"
	"github.com/ppiankov/factdash/internal/score"
	"github.com/ppiankov/factdash/internal/worker"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	exportPath string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check collected claims against the fact-check search API",
	Long: `Verify reads a collected claims CSV and looks up each statement with the
Google Fact Check Tools claim search API, one row at a time. The first
review whose rating reads as false or true decides the verdict.

Requires ` + APIKeyEnv + `; without it every row is "API Key Missing".

Example:
  factdash verify
  factdash verify --in january.csv --export january_verified.csv`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&inputPath, "in", "", "claims CSV to verify (default: collector.output_path)")
	verifyCmd.Flags().StringVar(&exportPath, "export", "", "write the verified table to this CSV path")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := inputPath
	if path == "" {
		path = cfg.Collector.OutputPath
	}
	claims, err := report.LoadClaimsCSV(path)
	if err != nil {
		return fmt.Errorf("load claims: %w", err)
	}
	if len(claims) == 0 {
		fmt.Fprintln(os.Stderr, "No claims found for the selected period.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rows := verifyClaims(ctx, pipeline.NewPipeline(cfg), claims)
	return presentVerified(cmd, rows, exportPath)
}

// verifyClaims runs the batch driver with a progress line on stderr
func verifyClaims(ctx context.Context, p *pipeline.Pipeline, claims []model.ClaimRecord) []model.VerifiedClaim {
	if !p.HasAPIKey() {
		fmt.Fprintf(os.Stderr, "⚠️  %s is not set; verdicts will read \"API Key Missing\"\n", APIKeyEnv)
	}

	rows := p.Verify(ctx, claims, func(done, total int) {
		fmt.Fprintf(os.Stderr, "\r⚙️  Verifying %d/%d (%.0f%%)", done, total, worker.Fraction(done, total)*100)
	})
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "✓ Verified %d claims\n", len(rows))
	return rows
}

func presentVerified(cmd *cobra.Command, rows []model.VerifiedClaim, export string) error {
	out := cmd.OutOrStdout()
	report.RenderVerified(out, rows)
	fmt.Fprintln(out)
	report.RenderVerdictChart(out, score.VerdictShares(rows))

	if export == "" {
		return nil
	}
	if err := saveVerified(export, rows); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Saved %s\n", export)
	return nil
}

func saveVerified(path string, rows []model.VerifiedClaim) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close export: %w", closeErr)
		}
	}()
	return report.WriteVerifiedCSV(f, rows)
}
