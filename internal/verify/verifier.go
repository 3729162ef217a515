package verify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ppiankov/factdash/internal/cache"
	"github.com/ppiankov/factdash/internal/factcheck"
	"github.com/ppiankov/factdash/internal/logger"
	"github.com/ppiankov/factdash/internal/metrics"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/util"
)

// DefaultTTL is how long a lookup result is reused for the same statement
const DefaultTTL = 24 * time.Hour

// Searcher runs a fact-check claim search
type Searcher interface {
	HasKey() bool
	Search(ctx context.Context, query string) (*factcheck.SearchResponse, error)
}

// Verifier cross-references statements against a fact-check search service
type Verifier struct {
	searcher Searcher
	cache    cache.Cache
	ttl      time.Duration
}

// NewVerifier creates a verifier. A nil cache disables memoization.
func NewVerifier(searcher Searcher, c cache.Cache, ttl time.Duration) *Verifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Verifier{
		searcher: searcher,
		cache:    c,
		ttl:      ttl,
	}
}

// Verify returns the verdict for statement, reusing a cached result for identical text
func (v *Verifier) Verify(ctx context.Context, statement string) model.VerificationResult {
	key := cache.CacheKey(statement)
	if v.cache != nil {
		if data, ok := v.cache.Get(key); ok {
			var cached model.VerificationResult
			if err := json.Unmarshal(data, &cached); err == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				return cached
			}
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	result := v.lookup(ctx, statement)
	metrics.Verdicts.WithLabelValues(string(result.Verdict)).Inc()

	// A cancelled request says nothing about the statement
	if v.cache != nil && ctx.Err() == nil {
		if data, err := json.Marshal(result); err == nil {
			if err := v.cache.Set(key, data, v.ttl); err != nil {
				logger.Log.Warnf("cache store failed: %v", err)
			}
		}
	}

	return result
}

func (v *Verifier) lookup(ctx context.Context, statement string) model.VerificationResult {
	if !v.searcher.HasKey() {
		return model.VerificationResult{Verdict: model.VerdictAPIKeyMissing}
	}

	query := util.CleanText(statement)
	if query == "" {
		return model.VerificationResult{Verdict: model.VerdictUnverified}
	}

	res, err := v.searcher.Search(ctx, query)
	if err != nil {
		metrics.FactCheckRequests.WithLabelValues("error").Inc()
		logger.Log.WithField("query", query).Debugf("fact-check search failed: %v", err)
		return model.VerificationResult{
			Verdict: model.VerdictAPIError,
			Rating:  err.Error(),
		}
	}
	metrics.FactCheckRequests.WithLabelValues("ok").Inc()

	return Classify(res)
}
