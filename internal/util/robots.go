package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsDecision is the outcome of a robots.txt lookup for one page
type RobotsDecision struct {
	Allowed    bool
	CrawlDelay time.Duration
}

// RobotsChecker answers whether listing pages may be crawled, caching robots.txt per host
type RobotsChecker struct {
	httpClient *http.Client
	agent      string
	mu         sync.Mutex
	hosts      map[string]*robotstxt.Group
}

// NewRobotsChecker creates a checker that identifies itself with the product token of userAgent
func NewRobotsChecker(client *http.Client, userAgent string) *RobotsChecker {
	return &RobotsChecker{
		httpClient: client,
		agent:      NormalizeUserAgent(userAgent),
		hosts:      make(map[string]*robotstxt.Group),
	}
}

// Check reports whether rawURL may be fetched. An unreachable robots.txt allows the fetch.
func (r *RobotsChecker) Check(ctx context.Context, rawURL string) (RobotsDecision, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return RobotsDecision{}, fmt.Errorf("parse URL: %w", err)
	}

	group, err := r.group(ctx, parsed)
	if err != nil || group == nil {
		return RobotsDecision{Allowed: true}, nil
	}

	path := parsed.EscapedPath()
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}

	return RobotsDecision{
		Allowed:    group.Test(path),
		CrawlDelay: group.CrawlDelay,
	}, nil
}

func (r *RobotsChecker) group(ctx context.Context, target *url.URL) (*robotstxt.Group, error) {
	r.mu.Lock()
	g, ok := r.hosts[target.Host]
	r.mu.Unlock()
	if ok {
		return g, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", target.Scheme, target.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.agent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	g = data.FindGroup(r.agent)

	r.mu.Lock()
	r.hosts[target.Host] = g
	r.mu.Unlock()

	return g, nil
}

// NormalizeUserAgent reduces a User-Agent to its product token ("factdash/0.1 (...)" -> "factdash")
func NormalizeUserAgent(ua string) string {
	parts := strings.Fields(ua)
	if len(parts) == 0 {
		return ua
	}
	return strings.Split(parts[0], "/")[0]
}
