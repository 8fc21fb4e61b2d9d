// Package dto defines the wire formats of the Finnhub API responses.
package dto

// QuoteResponse is the body of GET /quote.
// Finnhub returns all-zero prices for unknown tickers instead of an error.
type QuoteResponse struct {
	Open          float64 `json:"o"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Close         float64 `json:"c"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// SymbolItem is one element of the GET /stock/symbol listing.
type SymbolItem struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"displaySymbol"`
	Description   string `json:"description"`
	Currency      string `json:"currency"`
	FIGI          string `json:"figi"`
	MIC           string `json:"mic"`
	Type          string `json:"type"`
}
