package handler

import (
	"bank-ledger/internal/adapter/http/middleware"
	redisStore "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger           ports.LedgerService
	ReportingSvc     ports.ReportingService
	AuthSvc          ports.AuthService          // nil = login disabled
	TokenSvc         ports.TokenService         // nil = API open, no operator auth
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	IdempotencyCache ports.IdempotencyCache     // nil = idempotent replay disabled
	AuditSvc         ports.AuditService         // nil = audit logging disabled
	HealthCheckers   []ports.HealthChecker
	Logger           zerolog.Logger
}

func noop(c *gin.Context) { c.Next() }

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return noop
		}
		rule, ok := rules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	var idem gin.HandlerFunc = noop
	if deps.IdempotencyCache != nil {
		idem = middleware.Idempotency(deps.IdempotencyCache, deps.Logger)
	}

	var auth gin.HandlerFunc = noop
	if deps.TokenSvc != nil {
		auth = middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	if deps.AuthSvc != nil {
		authHandler := NewAuthHandler(deps.AuthSvc)
		v1.POST("/auth/login", rl("auth_login"), authHandler.Login)
	}

	// --- Operator routes ---
	accountHandler := NewAccountHandler(deps.Ledger)
	accounts := v1.Group("/accounts", auth)
	{
		accounts.POST("", rl("accounts_write"), idem, accountHandler.Create)
		accounts.GET("", rl("read"), accountHandler.List)
		accounts.GET("/:number", rl("read"), accountHandler.Get)
		accounts.POST("/:number/deposit", rl("accounts_write"), idem, accountHandler.Deposit)
		accounts.POST("/:number/withdraw", rl("accounts_write"), idem, accountHandler.Withdraw)
		accounts.GET("/:number/inspection", rl("read"), accountHandler.Inspect)
	}

	loanHandler := NewLoanHandler(deps.Ledger)
	loans := v1.Group("/loans", auth)
	{
		loans.POST("", rl("accounts_write"), idem, loanHandler.Originate)
		loans.GET("", rl("read"), loanHandler.List)
		loans.GET("/:id", rl("read"), loanHandler.Get)
		loans.POST("/:id/payments", rl("loan_payments"), idem, loanHandler.Pay)
		loans.GET("/:id/payments", rl("read"), loanHandler.Payments)
		loans.GET("/:id/schedule", rl("read"), loanHandler.Schedule)
		loans.POST("/:id/close", rl("accounts_write"), idem, loanHandler.Close)
	}

	reportHandler := NewReportHandler(deps.ReportingSvc)
	reports := v1.Group("/reports", auth)
	{
		reports.GET("/summary", rl("read"), reportHandler.Summary)
	}

	return r
}
