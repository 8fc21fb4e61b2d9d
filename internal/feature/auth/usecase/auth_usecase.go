// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quote_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じユーザー名のユーザーが既に存在する場合、ErrUsernameAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenManager はセッショントークンの発行と検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/token）ではなくコンシューマー（usecase）が定義します。
type TokenManager interface {
	// GenerateSessionToken は指定されたセッションの署名済みトークンを生成します。
	GenerateSessionToken(sessionID string, userID uint) (string, error)
	// ParseSessionToken はトークンを検証し、含まれるセッションIDを返します。
	ParseSessionToken(token string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenManager
	sessionTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenManager, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 同名ユーザーが既に存在する場合、ErrUsernameAlreadyExistsを返します。
func (u *authUsecase) Signup(ctx context.Context, username, password string) error {
	// 既存ユーザーの事前チェック。一意インデックス違反はadapters側でも
	// ErrUsernameAlreadyExistsへマッピングされるため、競合時も同じエラーになります。
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Username: username, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にセッションを発行して署名済みトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password, userAgent, ipAddress string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	id, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.GenerateSessionToken(session.ID, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout はトークンが指すセッションを失効させます。
// トークンが無効、またはセッションが存在しない場合もエラーにしません（冪等）。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	sessionID, err := u.tokens.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// newSessionID は64文字の16進セッションIDを生成します。
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
