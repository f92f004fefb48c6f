package ports

import (
	"context"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
)

// TokenVerifier validates admin bearer tokens issued by the catalog backend.
type TokenVerifier interface {
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
}
