// Package usecase implements the business logic for symbol search.
package usecase

import (
	"quote_backend/internal/feature/symbolsearch/domain/entity"
)

// SymbolSearcher abstracts the symbol cache.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (cache).
type SymbolSearcher interface {
	Search(query string) []entity.Symbol
}

// SearchUsecase provides business logic for symbol search operations.
type SearchUsecase struct {
	symbols SymbolSearcher
}

// NewSearchUsecase creates a new SearchUsecase backed by the given cache.
func NewSearchUsecase(symbols SymbolSearcher) *SearchUsecase {
	return &SearchUsecase{symbols: symbols}
}

// SearchSymbols returns the cached symbols whose ticker matches the query prefix.
// Matching, ordering, and the result cap live in the cache.
func (u *SearchUsecase) SearchSymbols(query string) []entity.Symbol {
	return u.symbols.Search(query)
}
