package pipeline

import (
	"context"
	"time"

	"github.com/ppiankov/factdash/internal/cache"
	"github.com/ppiankov/factdash/internal/extract/adapters"
	"github.com/ppiankov/factdash/internal/factcheck"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/util"
	"github.com/ppiankov/factdash/internal/verify"
	"github.com/ppiankov/factdash/internal/worker"
)

// Pipeline wires the collector and verifier from one configuration
type Pipeline struct {
	fetcher  *Fetcher
	registry *adapters.Registry
	limiter  *worker.Limiter
	robots   RobotsPolicy
	verifier *verify.Verifier
	batch    *worker.BatchVerifier
	memo     *cache.MemoryCache
	client   *factcheck.Client
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	client := factcheck.NewClient(cfg.FactCheck.Endpoint, cfg.FactCheck.APIKey, cfg.HTTP)
	memo := cache.NewMemoryCache(cfg.FactCheck.CacheTTL, cache.DefaultCleanupInterval)
	verifier := verify.NewVerifier(client, memo, cfg.FactCheck.CacheTTL)

	p := &Pipeline{
		fetcher:  NewFetcher(cfg.HTTP),
		registry: adapters.NewRegistry(),
		limiter:  worker.NewLimiter(PageDelay),
		verifier: verifier,
		batch:    worker.NewBatchVerifier(verifier),
		memo:     memo,
		client:   client,
		config:   cfg,
	}

	if cfg.Collector.RespectRobots {
		p.robots = util.NewRobotsChecker(util.NewHTTPClient(cfg.HTTP), cfg.HTTP.UserAgent)
	}

	return p
}

// Collect runs one collection over [start, end] and writes the configured output file
func (p *Pipeline) Collect(ctx context.Context, start, end time.Time, progress ProgressFunc) (*CollectResult, error) {
	opts := []CollectorOption{WithProgress(progress)}
	if p.robots != nil {
		opts = append(opts, WithRobots(p.robots))
	}

	collector := NewCollector(p.fetcher, p.registry, p.limiter,
		p.config.Collector.ListingURL, p.config.Collector.OutputPath, opts...)
	return collector.Collect(ctx, start, end)
}

// Verify cross-references every claim in row order
func (p *Pipeline) Verify(ctx context.Context, claims []model.ClaimRecord, progress worker.ProgressFunc) []model.VerifiedClaim {
	return p.batch.VerifyAll(ctx, claims, progress)
}

// VerifyStatement checks a single statement
func (p *Pipeline) VerifyStatement(ctx context.Context, statement string) model.VerificationResult {
	return p.verifier.Verify(ctx, statement)
}

// HasAPIKey reports whether the fact-check credential is configured
func (p *Pipeline) HasAPIKey() bool {
	return p.client.HasKey()
}

// CachedResults returns the number of memoized lookups
func (p *Pipeline) CachedResults() int {
	return p.memo.Len()
}

// ClearCache drops all memoized lookups
func (p *Pipeline) ClearCache() error {
	return p.memo.Clear()
}

// Config returns the configuration the pipeline was built from
func (p *Pipeline) Config() *model.Config {
	return p.config
}
