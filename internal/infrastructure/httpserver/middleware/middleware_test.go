package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver/helpers"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver/middleware"
	tmocks "github.com/avatarctic/catalog-edge/test/mocks"
)

func runAdmin(t *testing.T, verifier *tmocks.TokenVerifierMock, header string, next echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	m := middleware.NewAdminMiddleware(verifier, logrus.New())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	return m.RequireAdmin()(next)(c)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	return he.Code
}

func ok(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestAdminMiddleware_MissingTokenReturns401(t *testing.T) {
	err := runAdmin(t, &tmocks.TokenVerifierMock{}, "", ok)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestAdminMiddleware_InvalidTokenReturns401(t *testing.T) {
	verifier := &tmocks.TokenVerifierMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return nil, errors.New("bad")
	}}
	err := runAdmin(t, verifier, "Bearer invalid", ok)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestAdminMiddleware_NonAdminReturns403(t *testing.T) {
	verifier := &tmocks.TokenVerifierMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return &auth.Claims{UserID: "u1", Role: "editor"}, nil
	}}
	err := runAdmin(t, verifier, "Bearer tok", ok)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestAdminMiddleware_SetsClaims(t *testing.T) {
	verifier := &tmocks.TokenVerifierMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		assert.Equal(t, "tok", token)
		return &auth.Claims{UserID: "u1", Role: auth.RoleAdmin}, nil
	}}
	called := false
	err := runAdmin(t, verifier, "Bearer tok", func(c echo.Context) error {
		called = true
		claims, err := helpers.GetClaimsFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestMetricsMiddleware_LabelsCacheResult(t *testing.T) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "t_requests_total"}, []string{"method", "endpoint", "status", "cache"})
	dur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "t_request_duration_seconds"}, []string{"method", "endpoint", "cache"})
	m := middleware.NewMetricsMiddleware(total, dur)

	e := echo.New()
	e.Use(m.CollectHTTPMetrics())
	e.GET("/videos/:id", func(c echo.Context) error {
		c.Response().Header().Set("X-Cache", "HIT")
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/videos/abc", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(total.WithLabelValues(http.MethodGet, "/videos/:id", "200", "HIT")))
}
