package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bank-ledger/config"
	"bank-ledger/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const tellerHash = "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"

func setupAuthService(t *testing.T) (*AuthServiceImpl, *mocks.MockHashService, *mocks.MockTokenService, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService([]config.OperatorConfig{{Username: "teller1", PasswordHash: tellerHash}}, hashSvc, tokenSvc)
	return svc, hashSvc, tokenSvc, ctrl
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(time.Hour)
	hashSvc.EXPECT().Verify("correct", tellerHash).Return(true, nil)
	tokenSvc.EXPECT().Generate("teller1").Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(context.Background(), "teller1", "correct")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_UnknownOperator(t *testing.T) {
	svc, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	hashSvc.EXPECT().Verify("wrong", tellerHash).Return(false, nil)

	_, _, err := svc.Login(context.Background(), "teller1", "wrong")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_Failures(t *testing.T) {
	t.Run("bad stored hash", func(t *testing.T) {
		svc, hashSvc, _, ctrl := setupAuthService(t)
		defer ctrl.Finish()

		hashSvc.EXPECT().Verify("pw", tellerHash).Return(false, errors.New("invalid hash format"))

		_, _, err := svc.Login(context.Background(), "teller1", "pw")
		assertAppError(t, err, "SYS_001")
	})

	t.Run("token signing", func(t *testing.T) {
		svc, hashSvc, tokenSvc, ctrl := setupAuthService(t)
		defer ctrl.Finish()

		hashSvc.EXPECT().Verify("pw", tellerHash).Return(true, nil)
		tokenSvc.EXPECT().Generate("teller1").Return("", time.Time{}, errors.New("sign failed"))

		_, _, err := svc.Login(context.Background(), "teller1", "pw")
		assertAppError(t, err, "SYS_001")
	})
}

func TestAuthService_Login_RealHashAndToken(t *testing.T) {
	hasher := NewArgon2HashServiceWithParams(testArgon2Params)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	tokens := NewJWTTokenService(testJWTSecret, time.Hour, "bank-ledger")
	svc := NewAuthService([]config.OperatorConfig{{Username: "teller2", PasswordHash: hash}}, hasher, tokens)

	token, _, err := svc.Login(context.Background(), "teller2", "s3cret")
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "teller2", claims.Operator)
}
