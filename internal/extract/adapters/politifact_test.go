package adapters

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const listingFixture = `
<html>
<body>
<ul class="o-listicle__list">
  <li class="o-listicle__item">
    <article class="m-statement">
      <div class="m-statement__author">
        <a class="m-statement__name" href="/personalities/jane-doe/"> Jane Doe </a>
        <div class="m-statement__desc">
          stated on January 10, 2024 in a campaign speech:
        </div>
      </div>
      <div class="m-statement__content">
        <div class="m-statement__quote">
          <a href="/factchecks/2024/jan/12/jane-doe/">
            Says the unemployment rate doubled last year.
          </a>
        </div>
        <div class="m-statement__meter">
          <div class="c-image">
            <img class="c-image__original" src="/meter-false.jpg" alt="pants-fire">
          </div>
        </div>
      </div>
      <footer class="m-statement__footer">By Sam Reporter • January 12, 2024</footer>
    </article>
  </li>
  <li class="o-listicle__item">
    <article class="m-statement">
      <div class="m-statement__author">
        <a class="m-statement__name" href="/personalities/viral-image/">Viral image</a>
        <div class="m-statement__desc">posted on social media</div>
      </div>
      <div class="m-statement__quote"><a href="/x/">No date here.</a></div>
    </article>
  </li>
  <li class="o-listicle__item">
    <article class="m-statement">
      <div class="m-statement__desc">stated on Dec. 20, 2023 in a tweet</div>
      <div class="m-statement__quote"><a href="/y/">Abbreviated month</a></div>
      <img src="/speaker.jpg" alt="barely-true">
    </article>
  </li>
</ul>
<div class="m-list__pagination">
  <a class="c-button c-button--hollow" href="?page=1">&lt; Previous</a>
  <a class="c-button c-button--hollow" href="?page=3">Next &gt;</a>
</div>
</body>
</html>`

func parseFixture(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestPolitiFactAdapter_ParsePage(t *testing.T) {
	adapter := NewPolitiFactAdapter()

	page, err := adapter.ParsePage(parseFixture(t, listingFixture), "https://www.politifact.com/factchecks/list/?page=2")
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}

	if len(page.Claims) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(page.Claims))
	}

	first := page.Claims[0]
	if first.DateText != "January 10, 2024" {
		t.Errorf("unexpected date text %q", first.DateText)
	}
	if first.Statement != "Says the unemployment rate doubled last year." {
		t.Errorf("unexpected statement %q", first.Statement)
	}
	if first.Source != "Jane Doe" {
		t.Errorf("unexpected source %q", first.Source)
	}
	if first.Author != "Sam Reporter" {
		t.Errorf("unexpected author %q", first.Author)
	}
	if first.Label != "Pants Fire" {
		t.Errorf("unexpected label %q", first.Label)
	}

	if page.Claims[1].DateText != "" {
		t.Errorf("expected no date for social media card, got %q", page.Claims[1].DateText)
	}
	if page.Claims[1].Label != "" {
		t.Errorf("expected empty label without image, got %q", page.Claims[1].Label)
	}

	// "Dec." does not match the stated-on pattern
	if page.Claims[2].DateText != "" {
		t.Errorf("expected abbreviated month with period to be unmatched, got %q", page.Claims[2].DateText)
	}
	if page.Claims[2].Label != "Barely True" {
		t.Errorf("expected fallback image label, got %q", page.Claims[2].Label)
	}

	if page.NextHref != "?page=3" {
		t.Errorf("expected next href ?page=3, got %q", page.NextHref)
	}
}

func TestPolitiFactAdapter_LastPage(t *testing.T) {
	adapter := NewPolitiFactAdapter()
	src := `<html><body><ul><li class="o-listicle__item"></li></ul>
<a class="c-button c-button--hollow" href="?page=1">Previous</a></body></html>`

	page, err := adapter.ParsePage(parseFixture(t, src), "https://www.politifact.com/factchecks/list/")
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	if page.NextHref != "" {
		t.Errorf("expected no next link, got %q", page.NextHref)
	}
	if len(page.Claims) != 1 || page.Claims[0] != (RawClaim{}) {
		t.Errorf("expected one empty card, got %+v", page.Claims)
	}
}

func TestPolitiFactAdapter_CanHandle(t *testing.T) {
	adapter := NewPolitiFactAdapter()
	tests := map[string]bool{
		"https://www.politifact.com/factchecks/list/": true,
		"https://politifact.com/":                     true,
		"https://example.com/factchecks/list/":        false,
		"::bad":                                       false,
	}
	for u, want := range tests {
		if got := adapter.CanHandle(u); got != want {
			t.Errorf("CanHandle(%q) = %v, want %v", u, got, want)
		}
	}
}

type stubAdapter struct{ name string }

func (s stubAdapter) Name() string { return s.name }
func (s stubAdapter) CanHandle(url string) bool {
	return strings.Contains(url, "snopes")
}
func (s stubAdapter) ParsePage(doc *html.Node, pageURL string) (*ListingPage, error) {
	return &ListingPage{}, nil
}

func TestRegistry_FindAdapter(t *testing.T) {
	registry := NewRegistry()

	if got := registry.FindAdapter("https://www.politifact.com/factchecks/list/").Name(); got != "politifact" {
		t.Errorf("expected politifact adapter, got %s", got)
	}
	if got := registry.FindAdapter("http://127.0.0.1:8080/list/").Name(); got != "politifact" {
		t.Errorf("expected politifact fallback, got %s", got)
	}

	registry.Register(stubAdapter{name: "snopes"})
	if got := registry.FindAdapter("https://www.snopes.com/fact-check/").Name(); got != "snopes" {
		t.Errorf("expected registered adapter, got %s", got)
	}
}
