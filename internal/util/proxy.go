package util

import (
	"net/http"
	"net/url"

	"github.com/ppiankov/factdash/internal/model"
	"golang.org/x/net/http/httpproxy"
)

// NewProxyFunc returns the transport proxy selector for the given HTTP settings.
// Without explicit proxies it defers to HTTP_PROXY/HTTPS_PROXY/NO_PROXY.
func NewProxyFunc(cfg model.HTTPConfig) func(*http.Request) (*url.URL, error) {
	if cfg.HTTPProxy == "" && cfg.HTTPSProxy == "" {
		return http.ProxyFromEnvironment
	}

	pc := &httpproxy.Config{
		HTTPProxy:  cfg.HTTPProxy,
		HTTPSProxy: cfg.HTTPSProxy,
		NoProxy:    cfg.NoProxy,
	}
	selector := pc.ProxyFunc()

	return func(req *http.Request) (*url.URL, error) {
		return selector(req.URL)
	}
}

// NewHTTPClient builds the client shared by the listing fetcher and robots checks
func NewHTTPClient(cfg model.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy: NewProxyFunc(cfg),
		},
	}
}
