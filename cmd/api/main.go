package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"identity-api/internal/config"
	"identity-api/internal/db"
	apihttp "identity-api/internal/http"
	"identity-api/internal/repository"
	"identity-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("app starting",
		zap.String("title", cfg.AppTitle),
		zap.String("version", cfg.AppVersion),
	)

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	// Una clave corta es un error de configuración: el proceso no arranca.
	tokenSvc, err := service.NewTokenService(
		cfg.TokenSecretKey,
		cfg.TokenIssuer,
		cfg.TokenAudience,
		time.Duration(cfg.AccessExpiresInMinutes)*time.Minute,
		time.Duration(cfg.RefreshExpiresInMinutes)*time.Minute,
	)
	if err != nil {
		logger.Fatal("token service init", zap.Error(err))
	}

	tokenStore := service.NewMemoryRefreshTokenStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using memory refresh store", zap.Error(err))
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	accountRepo := repository.NewPgAccountRepository(pool)
	appClaimRepo := repository.NewPgAppClaimRepository(pool)
	hasher := service.NewPasswordHasher()

	accountsSvc := service.NewAccountsService(logger, accountRepo, hasher)
	identitySvc := service.NewIdentityService(logger, accountRepo, hasher, tokenSvc, tokenStore)

	identityHandler := apihttp.NewIdentityHandler(logger, identitySvc)
	accountsHandler := apihttp.NewAccountsHandler(logger, accountsSvc)
	masterDataHandler := apihttp.NewMasterDataHandler(logger, appClaimRepo)
	healthHandler := apihttp.NewHealthHandler(logger, pool)

	router := apihttp.NewRouter(logger, tokenSvc, identityHandler, accountsHandler, masterDataHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
