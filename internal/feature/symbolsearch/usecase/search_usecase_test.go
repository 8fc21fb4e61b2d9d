package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quote_backend/internal/feature/symbolsearch/domain/entity"
)

// mockSymbolSearcher はSymbolSearcherインターフェースのモック実装です。
type mockSymbolSearcher struct {
	SearchFunc func(query string) []entity.Symbol
}

func (m *mockSymbolSearcher) Search(query string) []entity.Symbol {
	if m.SearchFunc != nil {
		return m.SearchFunc(query)
	}
	return nil
}

func TestSearchUsecase_SearchSymbols(t *testing.T) {
	t.Parallel()

	expected := []entity.Symbol{{Symbol: "AAPL", DisplaySymbol: "AAPL"}}
	searcher := &mockSymbolSearcher{
		SearchFunc: func(query string) []entity.Symbol {
			assert.Equal(t, "AAP", query)
			return expected
		},
	}
	uc := NewSearchUsecase(searcher)

	got := uc.SearchSymbols("AAP")

	assert.Equal(t, expected, got)
}
