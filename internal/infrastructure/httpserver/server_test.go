package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/catalogapi"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/memcache"
	tmocks "github.com/avatarctic/catalog-edge/test/mocks"
)

type fixture struct {
	videos *tmocks.VideoServiceMock
	cats   *tmocks.CategoryServiceMock
	warmup *tmocks.WarmupServiceMock
	store  *memcache.Store
	srv    *httpserver.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		videos: &tmocks.VideoServiceMock{},
		cats:   &tmocks.CategoryServiceMock{},
		warmup: &tmocks.WarmupServiceMock{},
		store:  memcache.NewStore(10, time.Minute),
	}
	verifier := &tmocks.TokenVerifierMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		switch token {
		case "admin":
			return &auth.Claims{UserID: "u1", Role: auth.RoleAdmin}, nil
		case "viewer":
			return &auth.Claims{UserID: "u2", Role: "viewer"}, nil
		}
		return nil, errors.New("invalid")
	}}
	f.srv = httpserver.NewServer(&httpserver.ServerConfig{Host: "127.0.0.1", Port: "0"}, logrus.New(), httpserver.ServerDeps{
		VideoService:    f.videos,
		CategoryService: f.cats,
		WarmupService:   f.warmup,
		Cache:           f.store,
		TokenVerifier:   verifier,
	})
	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestGetVideo_SetsCacheHeader(t *testing.T) {
	f := newFixture(t)
	fromCache := false
	f.videos.GetVideoFn = func(ctx context.Context, id string) (*catalog.Cached[*catalog.Video], error) {
		res := &catalog.Cached[*catalog.Video]{Data: &catalog.Video{ID: id, Title: "t"}, FromCache: fromCache}
		fromCache = true
		return res, nil
	}

	rec := f.do(http.MethodGet, "/api/v1/videos/abc", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	var body struct {
		Data      catalog.Video `json:"data"`
		FromCache bool          `json:"from_cache"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc", body.Data.ID)
	assert.False(t, body.FromCache)

	rec = f.do(http.MethodGet, "/api/v1/videos/abc", "", "")
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestListVideos_BindsQuery(t *testing.T) {
	f := newFixture(t)
	var got catalog.ListVideosParams
	f.videos.ListVideosFn = func(ctx context.Context, p catalog.ListVideosParams) (*catalog.Cached[*catalog.VideoPage], error) {
		got = p
		return &catalog.Cached[*catalog.VideoPage]{Data: &catalog.VideoPage{}}, nil
	}

	rec := f.do(http.MethodGet, "/api/v1/videos?page=2&limit=16&category=music&sort=newest", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catalog.ListVideosParams{Page: 2, Limit: 16, Category: "music", Sort: "newest"}, got)
}

func TestListVideos_RejectsBadQuery(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/videos?page=abc", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/videos?limit=1000", "", "").Code)
}

func TestGetTrending_PassesLimit(t *testing.T) {
	f := newFixture(t)
	var got int
	f.videos.GetTrendingFn = func(ctx context.Context, limit int) (*catalog.Cached[[]catalog.Video], error) {
		got = limit
		return &catalog.Cached[[]catalog.Video]{Data: []catalog.Video{}}, nil
	}

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/videos/trending?limit=8", "", "").Code)
	assert.Equal(t, 8, got)
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/videos/trending", "", "").Code)
	assert.Equal(t, 0, got)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/videos/trending?limit=x", "", "").Code)

	rec := f.do(http.MethodGet, "/api/v1/videos/trending?limit=101", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "between 0 and 100")
}

func TestBackendErrorMapping(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"not found":   {&catalogapi.APIError{StatusCode: http.StatusNotFound, Message: "Video not found"}, http.StatusNotFound},
		"open":        {catalog.ErrBackendUnavailable, http.StatusServiceUnavailable},
		"transport":   {errors.New("connection refused"), http.StatusBadGateway},
		"wrapped 401": {errors.Join(errors.New("x"), &catalogapi.APIError{StatusCode: 401}), http.StatusUnauthorized},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.videos.GetVideoFn = func(ctx context.Context, id string) (*catalog.Cached[*catalog.Video], error) {
				return nil, tc.err
			}
			rec := f.do(http.MethodGet, "/api/v1/videos/abc", "", "")
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestLikeVideo(t *testing.T) {
	f := newFixture(t)
	f.videos.LikeVideoFn = func(ctx context.Context, id string) (*catalog.LikeResult, error) {
		return &catalog.LikeResult{Likes: 42}, nil
	}
	rec := f.do(http.MethodPost, "/api/v1/videos/abc/like", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likes":42}`, rec.Body.String())
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/admin/cache/stats", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/admin/cache/stats", "", "bogus").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/admin/cache/stats", "", "viewer").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/admin/cache/stats", "", "admin").Code)
}

func TestAdminRoutes_ForwardToken(t *testing.T) {
	f := newFixture(t)
	f.videos.DeleteVideoFn = func(ctx context.Context, id string) error {
		token, ok := catalogapi.BearerToken(ctx)
		assert.True(t, ok)
		assert.Equal(t, "admin", token)
		return nil
	}
	rec := f.do(http.MethodDelete, "/api/v1/admin/videos/abc", "", "admin")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateCategory_Validates(t *testing.T) {
	f := newFixture(t)
	var created *catalog.CreateCategoryRequest
	f.cats.CreateCategoryFn = func(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error) {
		created = req
		return &catalog.Category{ID: "c1", Name: req.Name}, nil
	}

	rec := f.do(http.MethodPost, "/api/v1/admin/categories", `{"color":"#fff"}`, "admin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
	assert.Nil(t, created)

	rec = f.do(http.MethodPost, "/api/v1/admin/categories", `{"name":"Jazz","color":"not-a-color"}`, "admin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/admin/categories", `{"name":"Jazz","color":"#112233"}`, "admin")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.Equal(t, "Jazz", created.Name)
}

func TestToggleCategory(t *testing.T) {
	f := newFixture(t)
	f.cats.ToggleCategoryFn = func(ctx context.Context, id string) (*catalog.Category, error) {
		return &catalog.Category{ID: id, IsActive: false}, nil
	}
	rec := f.do(http.MethodPatch, "/api/v1/admin/categories/c1/toggle", "", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCacheAdminEndpoints(t *testing.T) {
	f := newFixture(t)
	f.store.Set("video:a", 1, time.Hour)
	f.store.Set("video:b", 2, time.Nanosecond)
	time.Sleep(time.Millisecond)

	rec := f.do(http.MethodGet, "/api/v1/admin/cache/stats", "", "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats ports.CacheStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, 10, stats.Capacity)

	rec = f.do(http.MethodPost, "/api/v1/admin/cache/sweep", "", "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":1}`, rec.Body.String())

	rec = f.do(http.MethodDelete, "/api/v1/admin/cache", "", "admin")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, f.store.Len())
}

func TestWarmCache_ReturnsReport(t *testing.T) {
	f := newFixture(t)
	f.warmup.WarmFn = func(ctx context.Context) *ports.WarmupReport {
		return &ports.WarmupReport{RunID: "run-1", Outcomes: []ports.WarmupOutcome{{Task: "trending", Error: "down"}}}
	}
	rec := f.do(http.MethodPost, "/api/v1/admin/cache/warm", "", "admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var report ports.WarmupReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 1, report.Failed())
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestLikeVideo_RateLimited(t *testing.T) {
	videos := &tmocks.VideoServiceMock{LikeVideoFn: func(ctx context.Context, id string) (*catalog.LikeResult, error) {
		return &catalog.LikeResult{Likes: 1}, nil
	}}
	srv := httpserver.NewServer(&httpserver.ServerConfig{Host: "127.0.0.1", Port: "0", LikeRateLimit: 1}, logrus.New(), httpserver.ServerDeps{
		VideoService:    videos,
		CategoryService: &tmocks.CategoryServiceMock{},
		WarmupService:   &tmocks.WarmupServiceMock{},
		Cache:           memcache.NewStore(10, time.Minute),
		TokenVerifier:   &tmocks.TokenVerifierMock{},
	})

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/videos/abc/like", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestStart_FailsOnUnreadableTLSKeyPair(t *testing.T) {
	dir := t.TempDir()
	srv := httpserver.NewServer(&httpserver.ServerConfig{
		Host:        "127.0.0.1",
		Port:        "0",
		TLSCertFile: dir + "/missing.crt",
		TLSKeyFile:  dir + "/missing.key",
		ReadTimeout: time.Second,
	}, logrus.New(), httpserver.ServerDeps{Cache: memcache.NewStore(1, time.Minute)})

	err := srv.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TLS key pair")
}
