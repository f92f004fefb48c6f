package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

// TokenService verifies HS256 tokens signed with the secret shared with the catalog backend.
type TokenService struct {
	secret []byte
	logger *logrus.Logger
}

func NewTokenService(secret string, logger *logrus.Logger) ports.TokenVerifier {
	return &TokenService{secret: []byte(secret), logger: logger}
}

func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("token verification is not configured")
	}
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Debug("rejected bearer token")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
