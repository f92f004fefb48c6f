package helpers

import (
	"github.com/labstack/echo/v4"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
)

type ctxKey string

const (
	keyClaims ctxKey = "admin_claims"
)

func SetClaims(c echo.Context, claims *auth.Claims) { c.Set(string(keyClaims), claims) }
func GetClaimsRaw(c echo.Context) (*auth.Claims, bool) {
	v := c.Get(string(keyClaims))
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
