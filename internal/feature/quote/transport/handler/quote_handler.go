// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/quote/domain/entity"
	"quote_backend/internal/feature/quote/transport/http/dto"
	"quote_backend/internal/feature/quote/usecase"
)

// QuoteUsecase は株価取得のユースケースのインターフェースです。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// QuoteHandler は株価取得のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は新しい QuoteHandler を作成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote は指定シンボルの始値を取得するAPIです。
// - symbolクエリパラメータが無い場合は400を返却
// - プロバイダーが未知のシンボルと応答した場合は404を返却
// - プロバイダー障害時は502を返却（エラー詳細をメッセージに含む）
// - 成功時は正規化済みシンボルと始値を200で返却
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock symbol is required."})
		return
	}

	quote, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolNotFound) {
			// エラーメッセージにはクライアントが送信した表記のままシンボルを埋め込む
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Symbol %q not found.", symbol)})
			return
		}
		slog.Error("quote request failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Failed to retrieve data from Finnhub: %v", err)})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Symbol: quote.Symbol, OpenPrice: quote.OpenPrice})
}
