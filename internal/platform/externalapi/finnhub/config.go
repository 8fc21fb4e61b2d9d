// Package finnhub provides a client for the Finnhub market-data API.
package finnhub

import (
	"os"
	"time"
)

// DefaultBaseURL is the production Finnhub REST endpoint.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey   string        // API key sent in the X-Finnhub-Token header
	BaseURL  string        // Base URL for the API
	Exchange string        // Exchange whose symbol listing is cached (e.g. "US")
	Timeout  time.Duration // HTTP request timeout
}

// LoadConfig loads Finnhub configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:   os.Getenv("FINNHUB_API_KEY"),
		BaseURL:  os.Getenv("FINNHUB_BASE_URL"),
		Exchange: os.Getenv("FINNHUB_EXCHANGE"),
		Timeout:  10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Exchange == "" {
		cfg.Exchange = "US"
	}
	return cfg
}
