// Package entity defines the domain models for the quote feature.
package entity

// PriceQuote is the provider's current price snapshot for one symbol.
// Open and close both zero is the provider's convention for an unknown ticker.
type PriceQuote struct {
	Open  float64
	Close float64
}

// Quote is the API-facing quote result.
// Only the open price is surfaced; the close price is read for the
// unknown-ticker check and then discarded.
type Quote struct {
	Symbol    string  `json:"symbol"`
	OpenPrice float64 `json:"open_price"`
}
