// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"quote_backend/internal/platform/externalapi/finnhub"
	infrahttp "quote_backend/internal/platform/http"
	"quote_backend/internal/shared/ratelimiter"
)

// finnhubRateLimit is the free-tier request budget (60 calls/min).
const finnhubRateLimit = 60

// NewFinnhubClient creates a fully configured Finnhub client with HTTP client
// and a rate limiter sized for the free API tier.
func NewFinnhubClient() *finnhub.Client {
	cfg := finnhub.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(finnhubRateLimit, time.Minute)
	return finnhub.NewClient(cfg, httpClient, limiter)
}
