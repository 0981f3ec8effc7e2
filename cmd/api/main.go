package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-ledger/config"
	httpHandler "bank-ledger/internal/adapter/http/handler"
	pgStorage "bank-ledger/internal/adapter/storage/postgres"
	redisStorage "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/core/ports"
	"bank-ledger/internal/service"
	"bank-ledger/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("BLG_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting bank ledger")

	ctx := context.Background()

	deps := httpHandler.RouterDeps{Logger: log}
	var auditRepo ports.AuditRepository

	// PostgreSQL holds the audit trail only.
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare audit schema")
		}
		log.Info().Msg("PostgreSQL connected")

		repo := pgStorage.NewAuditRepo(pool)
		auditRepo = repo
		deps.HealthCheckers = append(deps.HealthCheckers, repo)
	}

	// Redis backs idempotent replay and rate limiting.
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		deps.IdempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		deps.HealthCheckers = append(deps.HealthCheckers, redisStorage.NewPinger(rdb))
	}

	// Initialize core services
	ledger := service.NewLedgerService(service.LedgerOptions{
		LoanIDSeed:         cfg.Ledger.LoanIDSeed,
		OverdraftLimit:     decimal.NewFromFloat(cfg.Ledger.OverdraftLimit),
		DefaultSavingsRate: decimal.NewFromFloat(cfg.Ledger.DefaultSavingsRate),
	}, service.SystemClock{}, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	deps.Ledger = ledger
	deps.ReportingSvc = service.NewReportingService(ledger)
	deps.AuditSvc = auditSvc

	if cfg.JWT.Secret != "" {
		tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
		deps.TokenSvc = tokenSvc
		deps.AuthSvc = service.NewAuthService(cfg.Operators, service.NewArgon2HashService(), tokenSvc)
		log.Info().Int("operators", len(cfg.Operators)).Msg("Operator authentication enabled")
	} else {
		log.Warn().Msg("jwt.secret is empty, the API is open to unauthenticated callers")
	}

	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Flush pending audit writes before the pool closes.
	auditSvc.Wait()

	log.Info().Msg("Server exited")
}
