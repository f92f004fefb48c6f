package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver/helpers"
)

func (s *Server) cacheStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cache.Stats())
}

func (s *Server) flushCache(c echo.Context) error {
	s.cache.Clear()
	s.logAdminAction(c, "cache flushed", nil)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) sweepCache(c echo.Context) error {
	removed := s.cache.SweepExpired()
	s.logAdminAction(c, "cache swept", logrus.Fields{"removed": removed})
	return c.JSON(http.StatusOK, map[string]int{"removed": removed})
}

func (s *Server) warmCache(c echo.Context) error {
	report := s.warmupSvc.Warm(c.Request().Context())
	s.logAdminAction(c, "cache warmed", logrus.Fields{"run_id": report.RunID, "failed": report.Failed()})
	return c.JSON(http.StatusOK, report)
}

func (s *Server) logAdminAction(c echo.Context, msg string, fields logrus.Fields) {
	if s.logger == nil {
		return
	}
	entry := s.logger.WithFields(fields)
	if claims, err := helpers.GetClaimsFromContext(c); err == nil {
		entry = entry.WithField("user_id", claims.UserID)
	}
	entry.Info(msg)
}
