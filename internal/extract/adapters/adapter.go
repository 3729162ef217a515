package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// RawClaim holds one listing card's fields exactly as the markup provides them
type RawClaim struct {
	DateText  string // e.g. "January 5, 2024"; empty when the card carries no statement date
	Statement string
	Source    string
	Author    string
	Label     string
}

// ListingPage is the result of parsing one listing page
type ListingPage struct {
	Claims   []RawClaim
	NextHref string // unresolved href of the "Next" control; empty on the last page
}

// ListingAdapter turns one site's listing markup into raw claim tuples.
// Pagination and date filtering stay with the caller.
type ListingAdapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter understands pages under the given URL
	CanHandle(url string) bool

	// ParsePage extracts cards and the next-page link from a parsed document
	ParsePage(doc *html.Node, pageURL string) (*ListingPage, error)
}

// Registry manages listing adapters
type Registry struct {
	adapters []ListingAdapter
	fallback ListingAdapter
}

// NewRegistry creates a registry with the built-in adapters; PolitiFact is the fallback
func NewRegistry() *Registry {
	politifact := NewPolitiFactAdapter()
	return &Registry{
		adapters: []ListingAdapter{politifact},
		fallback: politifact,
	}
}

// Register adds an adapter ahead of the built-ins
func (r *Registry) Register(adapter ListingAdapter) {
	r.adapters = append([]ListingAdapter{adapter}, r.adapters...)
}

// FindAdapter returns the first adapter that can handle url, or the fallback
func (r *Registry) FindAdapter(url string) ListingAdapter {
	for _, adapter := range r.adapters {
		if adapter.CanHandle(url) {
			return adapter
		}
	}
	return r.fallback
}

// selectionText returns the selection's text with whitespace collapsed
func selectionText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
