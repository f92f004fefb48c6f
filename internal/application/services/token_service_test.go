package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/avatarctic/catalog-edge/internal/application/services"
	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims *auth.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func adminClaims(exp time.Time) *auth.Claims {
	return &auth.Claims{
		UserID:           "u1",
		Email:            "admin@example.com",
		Role:             auth.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	}
}

func TestValidateToken_AcceptsSignedAdmin(t *testing.T) {
	svc := impl.NewTokenService("secret", nil)
	tok := sign(t, jwt.SigningMethodHS256, []byte("secret"), adminClaims(time.Now().Add(time.Hour)))

	claims, err := svc.ValidateToken(context.Background(), tok)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "u1", claims.UserID)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := impl.NewTokenService("secret", nil)
	cases := map[string]string{
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), adminClaims(time.Now().Add(time.Hour))),
		"expired":      sign(t, jwt.SigningMethodHS256, []byte("secret"), adminClaims(time.Now().Add(-time.Hour))),
		"alg none":     sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, adminClaims(time.Now().Add(time.Hour))),
		"garbage":      "not-a-token",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), tok)
			assert.Error(t, err)
		})
	}
}

func TestValidateToken_RequiresSecret(t *testing.T) {
	svc := impl.NewTokenService("", nil)
	tok := sign(t, jwt.SigningMethodHS256, []byte("x"), adminClaims(time.Now().Add(time.Hour)))
	_, err := svc.ValidateToken(context.Background(), tok)
	assert.Error(t, err)
}
