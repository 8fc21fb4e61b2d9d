package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/symbolsearch/domain/entity"
)

// SearchUsecase は銘柄検索に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SearchUsecase interface {
	SearchSymbols(query string) []entity.Symbol
}

// SymbolHandler は銘柄検索のHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SearchUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SearchUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// Search は銘柄のプレフィックス検索APIです。
// クエリパラメータqに一致する銘柄（最大5件）をJSON配列として返します。
// qが空の場合は空配列を返します。
func (h *SymbolHandler) Search(c *gin.Context) {
	matches := h.uc.SearchSymbols(c.Query("q"))
	c.JSON(http.StatusOK, matches)
}
