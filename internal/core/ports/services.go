package ports

import (
	"context"
	"errors"
	"time"

	"bank-ledger/internal/core/domain"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
}

// ErrRequestInFlight is returned by IdempotencyCache.Get while the key is
// reserved by a request that has not finished.
var ErrRequestInFlight = errors.New("idempotent request in flight")

// IdempotencyCache is the Redis-layer store for replayable responses.
// A request first Reserves its key, then either Sets the response or
// Releases the key.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// AuthService defines operator authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// ReportingService aggregates the ledger for dashboards.
type ReportingService interface {
	Summary() domain.LedgerSummary
}

// AuditService records audited actions. Log never fails the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// Clock is the wall-clock source used for timestamps and overdue checks.
type Clock interface {
	Now() time.Time
}
