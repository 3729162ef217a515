package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/factdash/internal/extract/adapters"
	"github.com/ppiankov/factdash/internal/logger"
	"github.com/ppiankov/factdash/internal/metrics"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/report"
	"github.com/ppiankov/factdash/internal/util"
)

const (
	// MaxPages bounds the listing pages fetched by one collection run
	MaxPages = 40

	// PageDelay is the pause between listing page requests
	PageDelay = time.Second
)

// statedDateLayouts are tried in order when parsing "stated on" dates
var statedDateLayouts = []string{"January 2, 2006", "Jan 2, 2006"}

// PageFetcher retrieves a parsed listing page
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Page, error)
}

// Pacer spaces out page requests
type Pacer interface {
	WaitWithDelay(ctx context.Context, rawURL string, additionalDelay time.Duration) error
}

// RobotsPolicy decides whether a page may be crawled
type RobotsPolicy interface {
	Check(ctx context.Context, rawURL string) (util.RobotsDecision, error)
}

// ProgressFunc is called after each listing page with the pages fetched and rows kept so far
type ProgressFunc func(pages, rows int)

// StopReason records why pagination ended
type StopReason string

const (
	StopLastPage    StopReason = "last_page"    // no "Next" control
	StopBeforeStart StopReason = "before_start" // reached a claim older than the range
	StopPageCap     StopReason = "page_cap"     // MaxPages reached
	StopFetchError  StopReason = "fetch_error"  // a page could not be fetched or parsed
)

// CollectResult is the outcome of one collection run
type CollectResult struct {
	Claims []model.ClaimRecord
	Pages  int
	Stop   StopReason

	// FetchErr is set when pagination aborted early; Claims then holds
	// everything gathered before the failure.
	FetchErr error
}

// Collector paginates a fact-check listing and keeps claims inside a date range
type Collector struct {
	fetcher    PageFetcher
	registry   *adapters.Registry
	pacer      Pacer
	robots     RobotsPolicy
	progress   ProgressFunc
	listingURL string
	outputPath string
}

// CollectorOption customizes a Collector
type CollectorOption func(*Collector)

// WithPacer replaces the inter-page pacer
func WithPacer(p Pacer) CollectorOption {
	return func(c *Collector) { c.pacer = p }
}

// WithRobots enables robots.txt checks before each page
func WithRobots(r RobotsPolicy) CollectorOption {
	return func(c *Collector) { c.robots = r }
}

// WithProgress registers a per-page progress callback
func WithProgress(fn ProgressFunc) CollectorOption {
	return func(c *Collector) { c.progress = fn }
}

// NewCollector creates a collector starting at listingURL and writing to outputPath.
// An empty outputPath skips the flat-file export.
func NewCollector(fetcher PageFetcher, registry *adapters.Registry, pacer Pacer, listingURL, outputPath string, opts ...CollectorOption) *Collector {
	c := &Collector{
		fetcher:    fetcher,
		registry:   registry,
		pacer:      pacer,
		listingURL: listingURL,
		outputPath: outputPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect gathers claims stated between start and end (inclusive, compared by calendar day).
// Listing pages are assumed newest first: the first claim older than start ends the run.
// The returned error covers setup and export failures only; page failures land in FetchErr.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (*CollectResult, error) {
	base, err := url.Parse(c.listingURL)
	if err != nil {
		return nil, fmt.Errorf("parse listing URL: %w", err)
	}

	start, end = calendarDay(start), calendarDay(end)
	adapter := c.registry.FindAdapter(c.listingURL)
	log := logger.Log.WithFields(map[string]interface{}{
		"adapter": adapter.Name(),
		"start":   start.Format(model.DateLayout),
		"end":     end.Format(model.DateLayout),
	})

	result := &CollectResult{Stop: StopLastPage}
	next := c.listingURL

pages:
	for next != "" {
		if result.Pages >= MaxPages {
			result.Stop = StopPageCap
			break
		}

		listing, err := c.fetchPage(ctx, adapter, next)
		if err != nil {
			log.WithField("url", next).Warnf("Error fetching data: %v", err)
			result.Stop = StopFetchError
			result.FetchErr = err
			break
		}
		result.Pages++
		metrics.PagesFetched.Inc()

		for _, raw := range listing.Claims {
			date, ok := ParseStatedDate(raw.DateText)
			if !ok {
				continue
			}
			if date.Before(start) {
				result.Stop = StopBeforeStart
				c.report(result)
				break pages
			}
			if date.After(end) {
				continue
			}
			if strings.TrimSpace(raw.Statement) == "" {
				continue
			}

			result.Claims = append(result.Claims, model.ClaimRecord{
				Author:    raw.Author,
				Statement: raw.Statement,
				Source:    raw.Source,
				Date:      date,
				Label:     raw.Label,
			})
		}
		c.report(result)

		next = resolveNext(base, listing.NextHref)
	}

	metrics.CollectRuns.WithLabelValues(string(result.Stop)).Inc()
	metrics.ClaimsCollected.Add(float64(len(result.Claims)))
	log.WithFields(map[string]interface{}{
		"pages":  result.Pages,
		"claims": len(result.Claims),
		"stop":   result.Stop,
	}).Info("collection finished")

	if c.outputPath != "" {
		if err := report.SaveClaimsCSV(c.outputPath, result.Claims); err != nil {
			return result, fmt.Errorf("write output: %w", err)
		}
	}

	return result, nil
}

// fetchPage waits for the page's slot, then fetches and parses it
func (c *Collector) fetchPage(ctx context.Context, adapter adapters.ListingAdapter, pageURL string) (*adapters.ListingPage, error) {
	var extra time.Duration
	if c.robots != nil {
		decision, err := c.robots.Check(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("robots: %w", err)
		}
		if !decision.Allowed {
			return nil, fmt.Errorf("robots.txt disallows %s", pageURL)
		}
		if decision.CrawlDelay > PageDelay {
			extra = decision.CrawlDelay - PageDelay
		}
	}

	if c.pacer != nil {
		if err := c.pacer.WaitWithDelay(ctx, pageURL, extra); err != nil {
			return nil, fmt.Errorf("wait: %w", err)
		}
	}

	page, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	listing, err := adapter.ParsePage(page.Doc, pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	return listing, nil
}

func (c *Collector) report(result *CollectResult) {
	if c.progress != nil {
		c.progress(result.Pages, len(result.Claims))
	}
}

// ParseStatedDate parses a "Month day, year" date; ok is false when the text is not a date
func ParseStatedDate(text string) (time.Time, bool) {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range statedDateLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// resolveNext resolves the "Next" href against the listing URL
func resolveNext(base *url.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
