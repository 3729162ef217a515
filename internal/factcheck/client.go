package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/util"
)

// Publisher is the organization behind a claim review
type Publisher struct {
	Name string `json:"name"`
	Site string `json:"site"`
}

// ClaimReview is one publisher's rating of a claim
type ClaimReview struct {
	Publisher     *Publisher `json:"publisher"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	ReviewDate    string     `json:"reviewDate"`
	TextualRating string     `json:"textualRating"`
	LanguageCode  string     `json:"languageCode"`
}

// Claim is a claim matched by the search, with its reviews in API order
type Claim struct {
	Text        string        `json:"text"`
	Claimant    string        `json:"claimant"`
	ClaimDate   string        `json:"claimDate"`
	ClaimReview []ClaimReview `json:"claimReview"`
}

// SearchResponse is the claims:search response body
type SearchResponse struct {
	Claims        []Claim `json:"claims"`
	NextPageToken string  `json:"nextPageToken"`
}

// Client queries the Google Fact Check Tools claim search API
type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
}

// NewClient creates a client for endpoint authenticating with apiKey
func NewClient(endpoint, apiKey string, httpCfg model.HTTPConfig) *Client {
	client := resty.New().
		SetTimeout(httpCfg.Timeout).
		SetHeader("User-Agent", httpCfg.UserAgent).
		SetHeader("Accept", "application/json")

	if httpCfg.HTTPProxy != "" || httpCfg.HTTPSProxy != "" {
		client.SetTransport(util.NewHTTPClient(httpCfg).Transport)
	}

	return &Client{
		http:     client,
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// HasKey reports whether a credential is configured
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.http.GetClient().Timeout
}

// Search runs a claim search for query
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetQueryParam("key", c.apiKey).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if res.IsError() {
		return nil, fmt.Errorf("unexpected status: %d %s", res.StatusCode(), http.StatusText(res.StatusCode()))
	}

	var out SearchResponse
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
