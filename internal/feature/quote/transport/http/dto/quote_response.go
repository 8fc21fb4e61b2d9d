// Package dto defines data transfer objects for the quote HTTP API.
package dto

// QuoteResponse is the success body of /quote/.
// The close price fetched from the provider is intentionally absent.
type QuoteResponse struct {
	Symbol    string  `json:"symbol"`
	OpenPrice float64 `json:"open_price"`
}
