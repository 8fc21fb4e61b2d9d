package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "quote_backend/internal/feature/auth/transport/handler"
	quotehandler "quote_backend/internal/feature/quote/transport/handler"
	symbolhandler "quote_backend/internal/feature/symbolsearch/transport/handler"
	"quote_backend/internal/platform/http/handler"
)

func NewRouter(auth *authhandler.AuthHandler, quote *quotehandler.QuoteHandler,
	symbol *symbolhandler.SymbolHandler, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// 登録済みパスへの未登録メソッドは405で応答する
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Only POST method is allowed."})
	})

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup/", auth.Signup)
	// ログイン（セッションクッキー発行）
	r.POST("/login/", auth.Login)
	// ログアウト（冪等）
	r.POST("/logout/", auth.Logout)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	protected := r.Group("/")
	// セッションクッキーの検証ミドルウェアを適用
	protected.Use(authRequired)
	{
		protected.GET("/quote/", quote.GetQuote)
		protected.GET("/symbol-search/", symbol.Search)
	}

	return r
}
