package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Claims represents the admin JWT issued by the catalog backend.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`

	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
