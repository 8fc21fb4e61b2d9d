// Package cache holds the process-wide symbol listing used by symbol search.
//
// The listing is fetched once at startup, sorted, and published as an immutable
// snapshot behind an atomic pointer. Readers either see the empty cache or the
// fully loaded, fully sorted one; there is no intermediate state.
package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"quote_backend/internal/feature/symbolsearch/domain/entity"
)

// maxResults は1回の検索で返す最大件数です。
const maxResults = 5

// SymbolSource は銘柄一覧の取得元を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（finnhub）ではなくコンシューマー（cache）が定義します。
type SymbolSource interface {
	// ListSymbols は指定された取引所の全銘柄一覧を返します。
	ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error)
}

// Cache is the in-memory symbol listing.
// The zero snapshot is an empty list, so a Cache that was never (or
// unsuccessfully) populated still serves searches.
type Cache struct {
	snapshot atomic.Pointer[[]entity.Symbol]
}

// New creates an empty Cache.
func New() *Cache {
	c := &Cache{}
	empty := make([]entity.Symbol, 0)
	c.snapshot.Store(&empty)
	return c
}

// Populate fetches the exchange's symbol listing and publishes it sorted
// ascending by displaySymbol (stable, so provider order breaks ties).
// On failure the previous snapshot (normally the empty one) stays in place;
// the caller decides whether to log and carry on. Populate is not retried.
func (c *Cache) Populate(ctx context.Context, source SymbolSource, exchange string) error {
	symbols, err := source.ListSymbols(ctx, exchange)
	if err != nil {
		return fmt.Errorf("failed to fetch symbol listing: %w", err)
	}

	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].DisplaySymbol < symbols[j].DisplaySymbol
	})

	// 置換とソートが完了したスライスのみを公開する
	c.snapshot.Store(&symbols)
	return nil
}

// Search returns, in cache order, up to 5 symbols whose ticker starts with the
// upper-cased query. An empty query returns an empty result without scanning.
func (c *Cache) Search(query string) []entity.Symbol {
	matches := make([]entity.Symbol, 0, maxResults)
	if query == "" {
		return matches
	}
	prefix := strings.ToUpper(query)

	for _, s := range *c.snapshot.Load() {
		if strings.HasPrefix(s.Symbol, prefix) {
			matches = append(matches, s)
			if len(matches) == maxResults {
				break
			}
		}
	}
	return matches
}

// Len returns the number of cached symbols.
func (c *Cache) Len() int {
	return len(*c.snapshot.Load())
}
