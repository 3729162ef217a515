package util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_Check(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			hits.Add(1)
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\nCrawl-delay: 3\n")
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewRobotsChecker(server.Client(), "factdash/0.1 (+https://example.com)")
	ctx := context.Background()

	allowed, err := checker.Check(ctx, server.URL+"/factchecks/list/?page=2")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !allowed.Allowed {
		t.Error("expected listing path to be allowed")
	}
	if allowed.CrawlDelay != 3*time.Second {
		t.Errorf("expected crawl delay 3s, got %v", allowed.CrawlDelay)
	}

	denied, err := checker.Check(ctx, server.URL+"/private/page")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if denied.Allowed {
		t.Error("expected /private/ to be disallowed")
	}

	if hits.Load() != 1 {
		t.Errorf("expected robots.txt fetched once, got %d", hits.Load())
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewRobotsChecker(server.Client(), "factdash/0.1")
	decision, err := checker.Check(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !decision.Allowed {
		t.Error("expected missing robots.txt to allow everything")
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	tests := map[string]string{
		"factdash/0.1 (+https://github.com/ppiankov/factdash)": "factdash",
		"curl/8.0": "curl",
		"":         "",
	}
	for in, want := range tests {
		if got := NormalizeUserAgent(in); got != want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", in, got, want)
		}
	}
}
