package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

// CatalogAPIMock is a lightweight mock for ports.CatalogAPI. Unset functions return empty
// results. Every call is counted by method name.
type CatalogAPIMock struct {
	ListVideosFn          func(ctx context.Context, params catalog.ListVideosParams) (*catalog.VideoPage, error)
	TrendingVideosFn      func(ctx context.Context, limit int) ([]catalog.Video, error)
	GetVideoFn            func(ctx context.Context, id string) (*catalog.Video, error)
	RecommendationsFn     func(ctx context.Context, id string, limit int) ([]catalog.Video, error)
	LikeVideoFn           func(ctx context.Context, id string) (*catalog.LikeResult, error)
	UpdateVideoFn         func(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error)
	DeleteVideoFn         func(ctx context.Context, id string) error
	ListAdminVideosFn     func(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error)
	ListCategoriesFn      func(ctx context.Context) ([]catalog.Category, error)
	GetCategoryBySlugFn   func(ctx context.Context, slug string) (*catalog.Category, error)
	ListAdminCategoriesFn func(ctx context.Context) ([]catalog.Category, error)
	CreateCategoryFn      func(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error)
	UpdateCategoryFn      func(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error)
	DeleteCategoryFn      func(ctx context.Context, id string) error
	ToggleCategoryFn      func(ctx context.Context, id string) (*catalog.Category, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ ports.CatalogAPI = (*CatalogAPIMock)(nil)

func (m *CatalogAPIMock) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *CatalogAPIMock) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *CatalogAPIMock) ListVideos(ctx context.Context, params catalog.ListVideosParams) (*catalog.VideoPage, error) {
	m.record("ListVideos")
	if m.ListVideosFn != nil {
		return m.ListVideosFn(ctx, params)
	}
	return &catalog.VideoPage{}, nil
}
func (m *CatalogAPIMock) TrendingVideos(ctx context.Context, limit int) ([]catalog.Video, error) {
	m.record("TrendingVideos")
	if m.TrendingVideosFn != nil {
		return m.TrendingVideosFn(ctx, limit)
	}
	return []catalog.Video{}, nil
}
func (m *CatalogAPIMock) GetVideo(ctx context.Context, id string) (*catalog.Video, error) {
	m.record("GetVideo")
	if m.GetVideoFn != nil {
		return m.GetVideoFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CatalogAPIMock) Recommendations(ctx context.Context, id string, limit int) ([]catalog.Video, error) {
	m.record("Recommendations")
	if m.RecommendationsFn != nil {
		return m.RecommendationsFn(ctx, id, limit)
	}
	return []catalog.Video{}, nil
}
func (m *CatalogAPIMock) LikeVideo(ctx context.Context, id string) (*catalog.LikeResult, error) {
	m.record("LikeVideo")
	if m.LikeVideoFn != nil {
		return m.LikeVideoFn(ctx, id)
	}
	return &catalog.LikeResult{}, nil
}
func (m *CatalogAPIMock) UpdateVideo(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error) {
	m.record("UpdateVideo")
	if m.UpdateVideoFn != nil {
		return m.UpdateVideoFn(ctx, id, req)
	}
	return &catalog.Video{ID: id}, nil
}
func (m *CatalogAPIMock) DeleteVideo(ctx context.Context, id string) error {
	m.record("DeleteVideo")
	if m.DeleteVideoFn != nil {
		return m.DeleteVideoFn(ctx, id)
	}
	return nil
}
func (m *CatalogAPIMock) ListAdminVideos(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error) {
	m.record("ListAdminVideos")
	if m.ListAdminVideosFn != nil {
		return m.ListAdminVideosFn(ctx, params)
	}
	return &catalog.VideoPage{}, nil
}
func (m *CatalogAPIMock) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	m.record("ListCategories")
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return []catalog.Category{}, nil
}
func (m *CatalogAPIMock) GetCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	m.record("GetCategoryBySlug")
	if m.GetCategoryBySlugFn != nil {
		return m.GetCategoryBySlugFn(ctx, slug)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CatalogAPIMock) ListAdminCategories(ctx context.Context) ([]catalog.Category, error) {
	m.record("ListAdminCategories")
	if m.ListAdminCategoriesFn != nil {
		return m.ListAdminCategoriesFn(ctx)
	}
	return []catalog.Category{}, nil
}
func (m *CatalogAPIMock) CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error) {
	m.record("CreateCategory")
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, req)
	}
	return &catalog.Category{Name: req.Name}, nil
}
func (m *CatalogAPIMock) UpdateCategory(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error) {
	m.record("UpdateCategory")
	if m.UpdateCategoryFn != nil {
		return m.UpdateCategoryFn(ctx, id, req)
	}
	return &catalog.Category{ID: id}, nil
}
func (m *CatalogAPIMock) DeleteCategory(ctx context.Context, id string) error {
	m.record("DeleteCategory")
	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, id)
	}
	return nil
}
func (m *CatalogAPIMock) ToggleCategory(ctx context.Context, id string) (*catalog.Category, error) {
	m.record("ToggleCategory")
	if m.ToggleCategoryFn != nil {
		return m.ToggleCategoryFn(ctx, id)
	}
	return &catalog.Category{ID: id}, nil
}

// VideoServiceMock is a lightweight mock for ports.VideoService.
type VideoServiceMock struct {
	ListVideosFn         func(ctx context.Context, params catalog.ListVideosParams) (*catalog.Cached[*catalog.VideoPage], error)
	GetTrendingFn        func(ctx context.Context, limit int) (*catalog.Cached[[]catalog.Video], error)
	GetVideoFn           func(ctx context.Context, id string) (*catalog.Cached[*catalog.Video], error)
	GetRecommendationsFn func(ctx context.Context, id string, limit int) (*catalog.Cached[[]catalog.Video], error)
	LikeVideoFn          func(ctx context.Context, id string) (*catalog.LikeResult, error)
	UpdateVideoFn        func(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error)
	DeleteVideoFn        func(ctx context.Context, id string) error
	ListAdminVideosFn    func(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error)
}

var _ ports.VideoService = (*VideoServiceMock)(nil)

func (m *VideoServiceMock) ListVideos(ctx context.Context, params catalog.ListVideosParams) (*catalog.Cached[*catalog.VideoPage], error) {
	if m.ListVideosFn != nil {
		return m.ListVideosFn(ctx, params)
	}
	return &catalog.Cached[*catalog.VideoPage]{Data: &catalog.VideoPage{}}, nil
}
func (m *VideoServiceMock) GetTrending(ctx context.Context, limit int) (*catalog.Cached[[]catalog.Video], error) {
	if m.GetTrendingFn != nil {
		return m.GetTrendingFn(ctx, limit)
	}
	return &catalog.Cached[[]catalog.Video]{Data: []catalog.Video{}}, nil
}
func (m *VideoServiceMock) GetVideo(ctx context.Context, id string) (*catalog.Cached[*catalog.Video], error) {
	if m.GetVideoFn != nil {
		return m.GetVideoFn(ctx, id)
	}
	return &catalog.Cached[*catalog.Video]{Data: &catalog.Video{ID: id}}, nil
}
func (m *VideoServiceMock) GetRecommendations(ctx context.Context, id string, limit int) (*catalog.Cached[[]catalog.Video], error) {
	if m.GetRecommendationsFn != nil {
		return m.GetRecommendationsFn(ctx, id, limit)
	}
	return &catalog.Cached[[]catalog.Video]{Data: []catalog.Video{}}, nil
}
func (m *VideoServiceMock) LikeVideo(ctx context.Context, id string) (*catalog.LikeResult, error) {
	if m.LikeVideoFn != nil {
		return m.LikeVideoFn(ctx, id)
	}
	return &catalog.LikeResult{}, nil
}
func (m *VideoServiceMock) UpdateVideo(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error) {
	if m.UpdateVideoFn != nil {
		return m.UpdateVideoFn(ctx, id, req)
	}
	return &catalog.Video{ID: id}, nil
}
func (m *VideoServiceMock) DeleteVideo(ctx context.Context, id string) error {
	if m.DeleteVideoFn != nil {
		return m.DeleteVideoFn(ctx, id)
	}
	return nil
}
func (m *VideoServiceMock) ListAdminVideos(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error) {
	if m.ListAdminVideosFn != nil {
		return m.ListAdminVideosFn(ctx, params)
	}
	return &catalog.VideoPage{}, nil
}

// CategoryServiceMock is a lightweight mock for ports.CategoryService.
type CategoryServiceMock struct {
	ListCategoriesFn      func(ctx context.Context) (*catalog.Cached[[]catalog.Category], error)
	GetCategoryBySlugFn   func(ctx context.Context, slug string) (*catalog.Category, error)
	ListAdminCategoriesFn func(ctx context.Context) ([]catalog.Category, error)
	CreateCategoryFn      func(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error)
	UpdateCategoryFn      func(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error)
	DeleteCategoryFn      func(ctx context.Context, id string) error
	ToggleCategoryFn      func(ctx context.Context, id string) (*catalog.Category, error)
}

var _ ports.CategoryService = (*CategoryServiceMock)(nil)

func (m *CategoryServiceMock) ListCategories(ctx context.Context) (*catalog.Cached[[]catalog.Category], error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return &catalog.Cached[[]catalog.Category]{Data: []catalog.Category{}}, nil
}
func (m *CategoryServiceMock) GetCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	if m.GetCategoryBySlugFn != nil {
		return m.GetCategoryBySlugFn(ctx, slug)
	}
	return &catalog.Category{Slug: slug}, nil
}
func (m *CategoryServiceMock) ListAdminCategories(ctx context.Context) ([]catalog.Category, error) {
	if m.ListAdminCategoriesFn != nil {
		return m.ListAdminCategoriesFn(ctx)
	}
	return []catalog.Category{}, nil
}
func (m *CategoryServiceMock) CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error) {
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, req)
	}
	return &catalog.Category{Name: req.Name}, nil
}
func (m *CategoryServiceMock) UpdateCategory(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error) {
	if m.UpdateCategoryFn != nil {
		return m.UpdateCategoryFn(ctx, id, req)
	}
	return &catalog.Category{ID: id}, nil
}
func (m *CategoryServiceMock) DeleteCategory(ctx context.Context, id string) error {
	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, id)
	}
	return nil
}
func (m *CategoryServiceMock) ToggleCategory(ctx context.Context, id string) (*catalog.Category, error) {
	if m.ToggleCategoryFn != nil {
		return m.ToggleCategoryFn(ctx, id)
	}
	return &catalog.Category{ID: id}, nil
}

// WarmupServiceMock is a lightweight mock for ports.WarmupService.
type WarmupServiceMock struct {
	PreloadFn func(ctx context.Context) *ports.WarmupReport
	WarmFn    func(ctx context.Context) *ports.WarmupReport
}

func (m *WarmupServiceMock) Preload(ctx context.Context) *ports.WarmupReport {
	if m.PreloadFn != nil {
		return m.PreloadFn(ctx)
	}
	return &ports.WarmupReport{}
}
func (m *WarmupServiceMock) Warm(ctx context.Context) *ports.WarmupReport {
	if m.WarmFn != nil {
		return m.WarmFn(ctx)
	}
	return &ports.WarmupReport{}
}

// TokenVerifierMock is a lightweight mock for ports.TokenVerifier.
type TokenVerifierMock struct {
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)
}

func (m *TokenVerifierMock) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil, fmt.Errorf("invalid token")
}
