package factcheck

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
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "taxes doubled" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("unexpected key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"claims":[{"text":"Taxes doubled","claimant":"Jane","claimReview":[
			{"publisher":{"name":"PolitiFact","site":"politifact.com"},"url":"https://p.example/1","textualRating":"Pants on Fire"}]}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", testHTTPConfig())
	res, err := client.Search(context.Background(), "taxes doubled")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(res.Claims) != 1 || len(res.Claims[0].ClaimReview) != 1 {
		t.Fatalf("unexpected response %+v", res)
	}
	review := res.Claims[0].ClaimReview[0]
	if review.Publisher == nil || review.Publisher.Name != "PolitiFact" {
		t.Errorf("unexpected publisher %+v", review.Publisher)
	}
	if review.TextualRating != "Pants on Fire" || review.URL != "https://p.example/1" {
		t.Errorf("unexpected review %+v", review)
	}
}

func TestClient_Search_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	res, err := NewClient(server.URL, "k", testHTTPConfig()).Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Claims) != 0 {
		t.Errorf("expected no claims, got %d", len(res.Claims))
	}
}

func TestClient_Search_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			want: "unexpected status: 403",
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `<html>`)
			},
			want: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewClient(server.URL, "k", testHTTPConfig()).Search(context.Background(), "q")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestClient_HasKey(t *testing.T) {
	if NewClient("http://x", "", testHTTPConfig()).HasKey() {
		t.Error("expected no key")
	}
	c := NewClient("http://x", "k", testHTTPConfig())
	if !c.HasKey() {
		t.Error("expected key")
	}
	if c.Timeout() != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", c.Timeout())
	}
}
