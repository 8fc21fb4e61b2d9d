// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/auth/transport/http/dto"
	"quote_backend/internal/feature/auth/usecase"
	"quote_backend/internal/platform/session"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたユーザー名とパスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, username, password string) error
	// Login はユーザーを認証し、成功時にセッションのクッキートークンを返します。
	Login(ctx context.Context, username, password, userAgent, ipAddress string) (string, error)
	// Logout はトークンが指すセッションを失効させます（冪等）。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth      AuthUsecase
	cookieTTL int // セッションクッキーのMax-Age（秒）
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase, cookieTTL int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieTTL: cookieTTL}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - JSONが不正な場合は400を返却
// - username/passwordが欠けている場合は400を返却
// - ユーザー名重複時は400を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup: invalid JSON", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON."})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, usecase.ErrUsernameAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists."})
			return
		}
		slog.Error("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Signup failed."})
		return
	}
	slog.Info("user signup successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully."})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - JSONが不正な場合は400を返却
// - 認証失敗時（ユーザー未検出・パスワード不一致・フィールド欠落）は401を返却
// - 認証成功時はセッションクッキーを設定し200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login: invalid JSON", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON."})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、未検出と不一致を区別しない
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}
		slog.Error("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed."})
		return
	}
	c.SetCookie(session.CookieName, token, h.cookieTTL, "/", "", false, true)
	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "Login successful."})
}

// Logout はログアウトAPIエンドポイントを処理します。
// セッションの有無に関わらず成功を返します（冪等）。
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			// 失効に失敗してもクライアントにはクッキー破棄で応答する
			slog.Warn("logout: session revoke failed", "error", err, "remote_addr", c.ClientIP())
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful."})
}
