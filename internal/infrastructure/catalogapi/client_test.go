package catalogapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/catalogapi"
)

func newClient(t *testing.T, h http.HandlerFunc) *catalogapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return catalogapi.NewClient(catalogapi.Config{BaseURL: srv.URL, ServiceToken: "svc", Timeout: time.Second}, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListVideos_SendsSetParams(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/videos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "music", r.URL.Query().Get("category"))
		assert.False(t, r.URL.Query().Has("search"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, catalog.VideoPage{
			Videos:     []catalog.Video{{ID: "v1", Title: "one"}},
			Pagination: catalog.Pagination{CurrentPage: 2, TotalPages: 3},
		})
	})

	page, err := c.ListVideos(context.Background(), catalog.ListVideosParams{Page: 2, Category: "music"})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	assert.Equal(t, "v1", page.Videos[0].ID)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestTrendingVideos_UnwrapsEnvelope(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/videos/trending", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{"videos": []catalog.Video{{ID: "a"}, {ID: "b"}}})
	})

	videos, err := c.TrendingVideos(context.Background(), 8)
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestAuthorization_PrefersCallerToken(t *testing.T) {
	var got []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, catalog.LikeResult{Likes: 3})
	})

	_, err := c.LikeVideo(context.Background(), "v1")
	require.NoError(t, err)
	_, err = c.LikeVideo(catalogapi.WithBearerToken(context.Background(), "user-jwt"), "v1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer svc", "Bearer user-jwt"}, got)
}

func TestUpdateCategory_SendsJSONBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/categories/c1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jazz", body["name"])
		writeJSON(w, http.StatusOK, catalog.Category{ID: "c1", Name: "Jazz"})
	})

	name := "Jazz"
	cat, err := c.UpdateCategory(context.Background(), "c1", &catalog.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jazz", cat.Name)
}

func TestNon2xx_ReturnsAPIError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Video not found"})
	})

	_, err := c.GetVideo(context.Background(), "missing")
	var apiErr *catalogapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Video not found", apiErr.Message)
}

func TestDeleteVideo_NoContent(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteVideo(context.Background(), "v1"))
}

func TestBreaker_OpensOnServerErrors(t *testing.T) {
	calls := 0
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	for range 5 {
		_, err := c.ListCategories(context.Background())
		var apiErr *catalogapi.APIError
		require.ErrorAs(t, err, &apiErr)
	}

	_, err := c.ListCategories(context.Background())
	assert.True(t, errors.Is(err, catalog.ErrBackendUnavailable))
	assert.Equal(t, 5, calls)
}

func TestBreaker_IgnoresClientErrors(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "nope"})
	})

	for range 10 {
		_, err := c.GetCategoryBySlug(context.Background(), "missing")
		assert.False(t, errors.Is(err, catalog.ErrBackendUnavailable))
	}
}

func TestBreaker_IgnoresCancelledCallers(t *testing.T) {
	calls := 0
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusOK, []map[string]string{})
	})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for range 10 {
		_, err := c.ListCategories(cancelled)
		require.ErrorIs(t, err, context.Canceled)
	}

	_, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
