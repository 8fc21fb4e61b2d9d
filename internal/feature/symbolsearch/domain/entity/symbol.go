// Package entity defines the domain models for the symbolsearch feature.
package entity

// Symbol represents one tradable security as listed by the market-data provider.
// The provider's documented fields are carried through untouched; ordering in the
// cache is by DisplaySymbol.
type Symbol struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"displaySymbol"`
	Description   string `json:"description"`
	Currency      string `json:"currency"`
	FIGI          string `json:"figi"`
	MIC           string `json:"mic"`
	Type          string `json:"type"`
}
