package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/factdash/internal/pipeline"
	"github.com/ppiankov/factdash/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API",
	Long: `Serve exposes collection, verification, summaries and CSV downloads over
HTTP for a single in-memory session, plus Prometheus metrics at /metrics.

Example:
  factdash serve --addr :8501
  curl -X POST localhost:8501/api/v1/claims/collect -d '{"start_date":"2024-01-01"}'`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default: server.addr)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.NewPipeline(cfg)
	if !p.HasAPIKey() {
		fmt.Fprintf(os.Stderr, "⚠️  %s is not set; verdicts will read \"API Key Missing\"\n", APIKeyEnv)
	}

	srv := server.NewServer(p)
	fmt.Fprintf(os.Stderr, "✓ Session %s\n", srv.Session().ID)
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
