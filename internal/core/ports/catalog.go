package ports

import (
	"context"
	"time"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

// CatalogAPI is the catalog backend. Implementations return their own errors unchanged
// to callers; the services never cache a failed call.
type CatalogAPI interface {
	ListVideos(ctx context.Context, params catalog.ListVideosParams) (*catalog.VideoPage, error)
	TrendingVideos(ctx context.Context, limit int) ([]catalog.Video, error)
	GetVideo(ctx context.Context, id string) (*catalog.Video, error)
	Recommendations(ctx context.Context, id string, limit int) ([]catalog.Video, error)
	LikeVideo(ctx context.Context, id string) (*catalog.LikeResult, error)
	UpdateVideo(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error)
	DeleteVideo(ctx context.Context, id string) error
	ListAdminVideos(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error)

	ListCategories(ctx context.Context) ([]catalog.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error)
	ListAdminCategories(ctx context.Context) ([]catalog.Category, error)
	CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ToggleCategory(ctx context.Context, id string) (*catalog.Category, error)
}

// VideoService serves video resources through the response cache.
type VideoService interface {
	ListVideos(ctx context.Context, params catalog.ListVideosParams) (*catalog.Cached[*catalog.VideoPage], error)
	GetTrending(ctx context.Context, limit int) (*catalog.Cached[[]catalog.Video], error)
	GetVideo(ctx context.Context, id string) (*catalog.Cached[*catalog.Video], error)
	GetRecommendations(ctx context.Context, id string, limit int) (*catalog.Cached[[]catalog.Video], error)
	LikeVideo(ctx context.Context, id string) (*catalog.LikeResult, error)
	UpdateVideo(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error)
	DeleteVideo(ctx context.Context, id string) error
	ListAdminVideos(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error)
}

// CategoryService serves categories through the response cache.
type CategoryService interface {
	ListCategories(ctx context.Context) (*catalog.Cached[[]catalog.Category], error)
	GetCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error)
	ListAdminCategories(ctx context.Context) ([]catalog.Category, error)
	CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ToggleCategory(ctx context.Context, id string) (*catalog.Category, error)
}

// WarmupService pre-populates the cache with hot resources.
type WarmupService interface {
	Preload(ctx context.Context) *WarmupReport
	Warm(ctx context.Context) *WarmupReport
}

// WarmupReport collects the outcome of every task in a warm-up run.
type WarmupReport struct {
	RunID    string          `json:"run_id"`
	Outcomes []WarmupOutcome `json:"outcomes"`
}

type WarmupOutcome struct {
	Task      string        `json:"task"`
	FromCache bool          `json:"from_cache"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
}

// Failed counts the tasks that returned an error.
func (r *WarmupReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Error != "" {
			n++
		}
	}
	return n
}
