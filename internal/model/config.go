package model

import "time"

// Config is the complete factdash configuration
type Config struct {
	HTTP      HTTPConfig      `yaml:"http" mapstructure:"http"`
	Collector CollectorConfig `yaml:"collector" mapstructure:"collector"`
	FactCheck FactCheckConfig `yaml:"factcheck" mapstructure:"factcheck"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// HTTPConfig controls outbound requests
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CollectorConfig controls the listing scraper
type CollectorConfig struct {
	ListingURL    string `yaml:"listing_url" mapstructure:"listing_url"`
	OutputPath    string `yaml:"output_path" mapstructure:"output_path"`
	RespectRobots bool   `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// FactCheckConfig controls the claim search API
type FactCheckConfig struct {
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	APIKey   string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// ServerConfig controls the dashboard API
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "factdash/0.1 (+https://github.com/ppiankov/factdash)",
			MaxBodyBytes: 5_000_000,
		},
		Collector: CollectorConfig{
			ListingURL:    "https://www.politifact.com/factchecks/list/",
			OutputPath:    "politifact_claims.csv",
			RespectRobots: false,
		},
		FactCheck: FactCheckConfig{
			Endpoint: "https://factchecktools.googleapis.com/v1alpha1/claims:search",
			CacheTTL: 24 * time.Hour,
		},
		Server: ServerConfig{
			Addr: ":8501",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
