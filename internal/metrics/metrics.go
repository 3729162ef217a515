package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "factdash",
		Subsystem: "collector",
		Name:      "pages_fetched_total",
		Help:      "Listing pages fetched and parsed.",
	})

	ClaimsCollected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "factdash",
		Subsystem: "collector",
		Name:      "claims_collected_total",
		Help:      "Claims kept after date filtering.",
	})

	CollectRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "factdash",
		Subsystem: "collector",
		Name:      "runs_total",
		Help:      "Collection runs by how pagination ended.",
	}, []string{"stop"})

	FactCheckRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "factdash",
		Subsystem: "verifier",
		Name:      "api_requests_total",
		Help:      "Fact-check search API calls by outcome.",
	}, []string{"outcome"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "factdash",
		Subsystem: "verifier",
		Name:      "cache_lookups_total",
		Help:      "Memo cache lookups by result.",
	}, []string{"result"})

	Verdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "factdash",
		Subsystem: "verifier",
		Name:      "verdicts_total",
		Help:      "Verification results by verdict.",
	}, []string{"verdict"})
)
