// Package usecase implements the business logic for the quote feature.
package usecase

import "errors"

var (
	// ErrSymbolNotFound is returned when the provider does not recognize the ticker
	// (all-zero open and close prices, Finnhub's unknown-symbol convention).
	ErrSymbolNotFound = errors.New("symbol not found")
)
