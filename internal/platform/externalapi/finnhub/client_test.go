package finnhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:   "test-key",
		BaseURL:  "https://api.test.com",
		Exchange: "US",
		Timeout:  10 * time.Second,
	}
	client := NewClient(cfg, &http.Client{}, nil)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.Config().APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, client.Config().APIKey)
	}
}

func TestClient_GetQuote_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/quote" {
			t.Errorf("expected path /quote, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", r.URL.Query().Get("symbol"))
		}
		if r.Header.Get("X-Finnhub-Token") != "test-key" {
			t.Errorf("expected token header test-key, got %s", r.Header.Get("X-Finnhub-Token"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"o": 150.75,
			"h": 155.00,
			"l": 149.00,
			"c": 154.50,
			"pc": 151.20,
			"t": 1736899200
		}`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	client := NewClient(cfg, server.Client(), nil)

	quote, err := client.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Open != 150.75 {
		t.Errorf("expected open 150.75, got %f", quote.Open)
	}
	if quote.Close != 154.50 {
		t.Errorf("expected close 154.50, got %f", quote.Close)
	}
}

func TestClient_ListSymbols_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock/symbol" {
			t.Errorf("expected path /stock/symbol, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("exchange") != "US" {
			t.Errorf("expected exchange US, got %s", r.URL.Query().Get("exchange"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{
				"symbol": "AAPL",
				"displaySymbol": "AAPL",
				"description": "APPLE INC",
				"currency": "USD",
				"figi": "BBG000B9XRY4",
				"mic": "XNAS",
				"type": "Common Stock"
			},
			{
				"symbol": "MSFT",
				"displaySymbol": "MSFT",
				"description": "MICROSOFT CORP",
				"currency": "USD",
				"figi": "BBG000BPH459",
				"mic": "XNAS",
				"type": "Common Stock"
			}
		]`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	client := NewClient(cfg, server.Client(), nil)

	symbols, err := client.ListSymbols(context.Background(), "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(symbols))
	}
	if symbols[0].Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", symbols[0].Symbol)
	}
	if symbols[0].FIGI != "BBG000B9XRY4" {
		t.Errorf("expected figi BBG000B9XRY4, got %s", symbols[0].FIGI)
	}
	if symbols[1].Description != "MICROSOFT CORP" {
		t.Errorf("expected description MICROSOFT CORP, got %s", symbols[1].Description)
	}
}

func TestClient_GetQuote_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			cfg := Config{APIKey: "test-key", BaseURL: server.URL}
			client := NewClient(cfg, server.Client(), nil)

			_, err := client.GetQuote(context.Background(), "AAPL")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "finnhub http") {
				t.Errorf("expected HTTP error message, got %v", err)
			}
		})
	}
}

func TestClient_GetQuote_MissingAPIKey(t *testing.T) {
	t.Parallel()

	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := Config{APIKey: "", BaseURL: server.URL}
	client := NewClient(cfg, server.Client(), nil)

	_, err := client.GetQuote(context.Background(), "AAPL")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if requested {
		t.Error("expected no request to be made without an API key")
	}
}

func TestClient_GetQuote_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	client := NewClient(cfg, server.Client(), nil)

	_, err := client.GetQuote(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "finnhub decode") {
		t.Errorf("expected decode error message, got %v", err)
	}
}

func TestClient_GetQuote_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	client := NewClient(cfg, server.Client(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.GetQuote(ctx, "AAPL")
	if err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	// Note: This test doesn't set environment variables to avoid affecting other tests
	cfg := LoadConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Exchange != "US" {
		t.Errorf("expected exchange US, got %q", cfg.Exchange)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
}
