package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/catalogapi"
)

// backendError maps a catalog backend failure to an HTTP error. Backend answers keep
// their status, an open circuit is 503 and anything else is 502.
func (s *Server) backendError(c echo.Context, err error) error {
	var apiErr *catalogapi.APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &apiErr):
		return echo.NewHTTPError(apiErr.StatusCode, apiErr.Message)
	case errors.Is(err, catalog.ErrBackendUnavailable):
		s.logBackendError(c, err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "catalog backend unavailable")
	default:
		s.logBackendError(c, err)
		return echo.NewHTTPError(http.StatusBadGateway, "catalog backend error")
	}
}

func (s *Server) logBackendError(c echo.Context, err error) {
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"path": c.Path(), "method": c.Request().Method}).WithError(err).Error("catalog backend request failed")
	}
}

// respondCached writes a read-through result and marks it with X-Cache.
func respondCached[T any](c echo.Context, res *catalog.Cached[T]) error {
	if res.FromCache {
		c.Response().Header().Set("X-Cache", "HIT")
	} else {
		c.Response().Header().Set("X-Cache", "MISS")
	}
	return c.JSON(http.StatusOK, res)
}
