package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/factdash/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	cfg := model.DefaultConfig().HTTP
	cfg.Timeout = 5 * time.Second
	cfg.UserAgent = "test-agent"
	return cfg
}

func TestFetcher_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("expected test-agent user agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, "<html><body><p>OK</p></body></html>")
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())
	page, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Doc == nil {
		t.Fatal("expected parsed document")
	}
	if page.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", page.StatusCode)
	}
	if !strings.HasPrefix(page.FinalURL, server.URL) {
		t.Errorf("unexpected final URL %s", page.FinalURL)
	}
}

func TestFetcher_Fetch_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if got := err.Error(); got != "unexpected status: 503 503 Service Unavailable" {
		t.Errorf("unexpected error: %s", got)
	}
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.Timeout = 50 * time.Millisecond
	fetcher := NewFetcher(cfg)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.HasPrefix(err.Error(), "fetch:") {
		t.Errorf("expected fetch error, got %v", err)
	}
}
