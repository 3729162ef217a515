package adapters

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	statedOnPattern = regexp.MustCompile(`stated on ([A-Za-z]+\s+\d{1,2},\s+\d{4})`)
	authorPattern   = regexp.MustCompile(`By\s+([^•]+)`)
	nextPattern     = regexp.MustCompile(`(?i)next`)
)

// PolitiFactAdapter parses https://www.politifact.com/factchecks/list/ pages
type PolitiFactAdapter struct{}

// NewPolitiFactAdapter creates the PolitiFact listing adapter
func NewPolitiFactAdapter() *PolitiFactAdapter {
	return &PolitiFactAdapter{}
}

// Name returns the adapter name
func (a *PolitiFactAdapter) Name() string {
	return "politifact"
}

// CanHandle matches politifact.com hosts
func (a *PolitiFactAdapter) CanHandle(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == "politifact.com" || strings.HasSuffix(host, ".politifact.com")
}

// ParsePage extracts every li.o-listicle__item card and the "Next" button href
func (a *PolitiFactAdapter) ParsePage(doc *html.Node, pageURL string) (*ListingPage, error) {
	root := goquery.NewDocumentFromNode(doc)
	page := &ListingPage{}

	root.Find("li.o-listicle__item").Each(func(_ int, card *goquery.Selection) {
		page.Claims = append(page.Claims, a.parseCard(card))
	})

	root.Find("a.c-button.c-button--hollow").EachWithBreak(func(_ int, btn *goquery.Selection) bool {
		if !nextPattern.MatchString(btn.Text()) {
			return true
		}
		if href, ok := btn.Attr("href"); ok {
			page.NextHref = strings.TrimSpace(href)
			return false
		}
		return true
	})

	return page, nil
}

func (a *PolitiFactAdapter) parseCard(card *goquery.Selection) RawClaim {
	var claim RawClaim

	if desc := card.Find("div.m-statement__desc").First(); desc.Length() > 0 {
		if m := statedOnPattern.FindStringSubmatch(desc.Text()); m != nil {
			claim.DateText = strings.Join(strings.Fields(m[1]), " ")
		}
	}

	claim.Statement = selectionText(card.Find("div.m-statement__quote a").First())
	claim.Source = selectionText(card.Find("a.m-statement__name").First())

	if footer := card.Find("footer.m-statement__footer").First(); footer.Length() > 0 {
		if m := authorPattern.FindStringSubmatch(footer.Text()); m != nil {
			claim.Author = strings.TrimSpace(m[1])
		}
	}

	claim.Label = a.label(card)
	return claim
}

// label formats the Truth-O-Meter image alt ("pants-fire" -> "Pants Fire").
// The meter image is preferred; otherwise the first image with an alt attribute is used.
func (a *PolitiFactAdapter) label(card *goquery.Selection) string {
	img := card.Find("div.m-statement__meter img[alt]").First()
	if img.Length() == 0 {
		img = card.Find("img[alt]").First()
	}
	alt, ok := img.Attr("alt")
	if !ok {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(alt, "-", " "))
}
