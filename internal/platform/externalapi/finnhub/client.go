package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	quoteentity "quote_backend/internal/feature/quote/domain/entity"
	quoteusecase "quote_backend/internal/feature/quote/usecase"
	"quote_backend/internal/feature/symbolsearch/cache"
	symbolentity "quote_backend/internal/feature/symbolsearch/domain/entity"
	"quote_backend/internal/platform/externalapi/finnhub/dto"
	"quote_backend/internal/shared/ratelimiter"
)

// ErrMissingAPIKey is returned when no Finnhub credential is configured.
var ErrMissingAPIKey = errors.New("finnhub: missing API key")

// Client はFinnhub APIから株価データと銘柄一覧を取得するクライアントです。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがMarketRepositoryとSymbolSourceを実装していることをコンパイル時に検証します。
var (
	_ quoteusecase.MarketRepository = (*Client)(nil)
	_ cache.SymbolSource            = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiterはnil可（制限なし）。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// Config はクライアントに適用されている設定を返します。
func (f *Client) Config() Config {
	return f.cfg
}

// GetQuote はFinnhubの/quoteエンドポイントから現在の価格スナップショットを取得します。
// シンボルの存在判定（o==0かつc==0）は呼び出し側のusecaseが行います。
func (f *Client) GetQuote(ctx context.Context, symbol string) (*quoteentity.PriceQuote, error) {
	var body dto.QuoteResponse
	q := url.Values{}
	q.Set("symbol", symbol)
	if err := f.get(ctx, "/quote", q, &body); err != nil {
		return nil, err
	}
	return &quoteentity.PriceQuote{Open: body.Open, Close: body.Close}, nil
}

// ListSymbols はFinnhubの/stock/symbolエンドポイントから取引所の全銘柄一覧を取得します。
func (f *Client) ListSymbols(ctx context.Context, exchange string) ([]symbolentity.Symbol, error) {
	var body []dto.SymbolItem
	q := url.Values{}
	q.Set("exchange", exchange)
	if err := f.get(ctx, "/stock/symbol", q, &body); err != nil {
		return nil, err
	}

	symbols := make([]symbolentity.Symbol, 0, len(body))
	for _, s := range body {
		symbols = append(symbols, symbolentity.Symbol{
			Symbol:        s.Symbol,
			DisplaySymbol: s.DisplaySymbol,
			Description:   s.Description,
			Currency:      s.Currency,
			FIGI:          s.FIGI,
			MIC:           s.MIC,
			Type:          s.Type,
		})
	}
	return symbols, nil
}

// get はFinnhub APIへのGETリクエストを実行し、JSONレスポンスをoutへデコードします。
func (f *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if f.cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	if f.limiter != nil {
		f.limiter.WaitIfNeeded()
	}

	u := fmt.Sprintf("%s%s?%s", f.cfg.BaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Finnhub-Token", f.cfg.APIKey)

	res, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("finnhub decode: %w", err)
	}
	return nil
}
