package service

import (
	"context"
	"fmt"
	"time"

	"bank-ledger/config"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService against the configured
// operator list.
type AuthServiceImpl struct {
	operators map[string]string // username -> argon2id hash
	hashSvc   ports.HashService
	tokenSvc  ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	operators []config.OperatorConfig,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	byName := make(map[string]string, len(operators))
	for _, op := range operators {
		byName[op.Username] = op.PasswordHash
	}
	return &AuthServiceImpl{
		operators: byName,
		hashSvc:   hashSvc,
		tokenSvc:  tokenSvc,
	}
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(_ context.Context, username, password string) (string, time.Time, error) {
	hash, ok := s.operators[username]
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, hash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
