// Package usecase はquoteフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"quote_backend/internal/feature/quote/domain/entity"
)

// MarketRepository は外部市場データAPIを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（finnhub）ではなくコンシューマー（usecase）が定義します。
type MarketRepository interface {
	// GetQuote は指定されたシンボルの現在の価格スナップショットを取得します。
	GetQuote(ctx context.Context, symbol string) (*entity.PriceQuote, error)
}

// QuoteUsecase は株価取得のビジネスロジックを実装します。
type QuoteUsecase struct {
	market MarketRepository
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// GetQuote はシンボルを大文字に正規化し、プロバイダーから株価を取得します。
// - プロバイダー障害時はエラーをそのまま返します（上流エラー）。
// - 始値・終値がともに0の場合はErrSymbolNotFoundを返します。
// - 成功時は正規化済みシンボルと始値を返します。終値は未知シンボル判定にのみ
//   使用し、レスポンスには含めません。
func (u *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	normalized := strings.ToUpper(symbol)

	price, err := u.market.GetQuote(ctx, normalized)
	if err != nil {
		// 上流エラーはそのまま伝播し、transport層で502に変換する
		return nil, err
	}

	// Finnhubは未知のシンボルに対して価格0を返す
	if price.Open == 0 && price.Close == 0 {
		return nil, ErrSymbolNotFound
	}

	return &entity.Quote{Symbol: normalized, OpenPrice: price.Open}, nil
}
