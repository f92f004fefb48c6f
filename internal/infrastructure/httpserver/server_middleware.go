package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())
	if len(s.config.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: s.config.AllowedOrigins}))
	} else {
		s.echo.Use(middleware.CORS())
	}
	s.echo.Use(middleware.RequestID())

	s.echo.Use(s.middleware.Metrics.CollectHTTPMetrics())
	s.echo.Use(s.middleware.Logging.RequestLogging())
}

// publicWriteLimiter limits likes per client IP. It is a no-op when LikeRateLimit is 0.
func (s *Server) publicWriteLimiter() echo.MiddlewareFunc {
	if s.config.LikeRateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(s.config.LikeRateLimit),
		Burst: int(s.config.LikeRateLimit*2) + 1,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if s.logger != nil {
				s.logger.WithField("client", identifier).Warn("like rate limit exceeded")
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}
