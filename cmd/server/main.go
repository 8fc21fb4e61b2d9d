package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"quote_backend/internal/app/di"
	"quote_backend/internal/app/router"
	authadapters "quote_backend/internal/feature/auth/adapters"
	authhandler "quote_backend/internal/feature/auth/transport/handler"
	authusecase "quote_backend/internal/feature/auth/usecase"
	quotehandler "quote_backend/internal/feature/quote/transport/handler"
	quoteusecase "quote_backend/internal/feature/quote/usecase"
	symbolcache "quote_backend/internal/feature/symbolsearch/cache"
	symbolhandler "quote_backend/internal/feature/symbolsearch/transport/handler"
	symbolusecase "quote_backend/internal/feature/symbolsearch/usecase"
	infradb "quote_backend/internal/platform/db"
	infraredis "quote_backend/internal/platform/redis"
	"quote_backend/internal/platform/session"
	"quote_backend/internal/platform/token"
)

func main() {
	// .env（存在すれば）読み込み
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to relational session store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// セッション設定
	sessionTTL := sessionTTLFromEnv()
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)

	// 外部API
	market := di.NewFinnhubClient()

	// 銘柄キャッシュ（起動時に一度だけ投入。失敗しても空のまま稼働を続ける）
	cache := symbolcache.New()
	cfg := market.Config()
	if err := cache.Populate(context.Background(), market, cfg.Exchange); err != nil {
		slog.Warn("symbol cache population failed, search will return no results",
			"exchange", cfg.Exchange, "error", err)
	} else {
		slog.Info("symbol cache populated", "exchange", cfg.Exchange, "count", cache.Len())
	}

	// Usecase
	tokens := token.NewManager(secret, sessionTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, sessionTTL)
	quoteUC := quoteusecase.NewQuoteUsecase(market)
	searchUC := symbolusecase.NewSearchUsecase(cache)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, int(sessionTTL.Seconds()))
	quoteH := quotehandler.NewQuoteHandler(quoteUC)
	symbolH := symbolhandler.NewSymbolHandler(searchUC)

	// ルータ生成
	router := router.NewRouter(authH, quoteH, symbolH, session.AuthRequired(tokens, sessionRepo))

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

// sessionTTLFromEnv はSESSION_TTL_HOURS（デフォルト24時間）を読み取ります。
func sessionTTLFromEnv() time.Duration {
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
		slog.Warn("invalid SESSION_TTL_HOURS, using default", "value", v)
	}
	return 24 * time.Hour
}
