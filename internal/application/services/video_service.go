package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

type VideoService struct {
	api    ports.CatalogAPI
	cache  ports.Cache
	ttl    TTLPolicy
	logger *logrus.Logger
}

func NewVideoService(api ports.CatalogAPI, cache ports.Cache, ttl TTLPolicy, logger *logrus.Logger) ports.VideoService {
	return &VideoService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *VideoService) ListVideos(ctx context.Context, params catalog.ListVideosParams) (*catalog.Cached[*catalog.VideoPage], error) {
	return readThrough(ctx, s.cache, s.logger, familyVideos, VideosKey(params), s.ttl.Videos,
		func(ctx context.Context) (*catalog.VideoPage, error) {
			return s.api.ListVideos(ctx, params)
		})
}

// GetTrending uses DefaultTrendingLimit when limit is not positive.
func (s *VideoService) GetTrending(ctx context.Context, limit int) (*catalog.Cached[[]catalog.Video], error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	return readThrough(ctx, s.cache, s.logger, familyTrending, TrendingKey(limit), s.ttl.Trending,
		func(ctx context.Context) ([]catalog.Video, error) {
			return s.api.TrendingVideos(ctx, limit)
		})
}

func (s *VideoService) GetVideo(ctx context.Context, id string) (*catalog.Cached[*catalog.Video], error) {
	return readThrough(ctx, s.cache, s.logger, familyVideo, VideoKey(id), s.ttl.Video,
		func(ctx context.Context) (*catalog.Video, error) {
			return s.api.GetVideo(ctx, id)
		})
}

// GetRecommendations uses DefaultRecommendationsLimit when limit is not positive.
func (s *VideoService) GetRecommendations(ctx context.Context, id string, limit int) (*catalog.Cached[[]catalog.Video], error) {
	if limit <= 0 {
		limit = DefaultRecommendationsLimit
	}
	return readThrough(ctx, s.cache, s.logger, familyRecommendations, RecommendationsKey(id, limit), s.ttl.Recommendations,
		func(ctx context.Context) ([]catalog.Video, error) {
			return s.api.Recommendations(ctx, id, limit)
		})
}

// LikeVideo forwards the like and, once the backend accepted it, drops every cached
// value that carries or is ordered by the like count.
func (s *VideoService) LikeVideo(ctx context.Context, id string) (*catalog.LikeResult, error) {
	res, err := s.api.LikeVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	invalidate(s.cache, s.logger, "like", []string{VideoKey(id)}, allTrending, allVideoLists, allRecommendations)
	return res, nil
}

// UpdateVideo drops every recommendation list, not only the video's own, since the
// video may appear in any of them.
func (s *VideoService) UpdateVideo(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error) {
	v, err := s.api.UpdateVideo(ctx, id, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("video_id", id).WithError(err).Error("failed to update video")
		}
		return nil, err
	}
	invalidate(s.cache, s.logger, "update_video", []string{VideoKey(id)}, allTrending, allVideoLists, allRecommendations)
	if s.logger != nil {
		s.logger.WithField("video_id", id).Info("video updated")
	}
	return v, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	if err := s.api.DeleteVideo(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.WithField("video_id", id).WithError(err).Error("failed to delete video")
		}
		return err
	}
	invalidate(s.cache, s.logger, "delete_video", []string{VideoKey(id)}, allTrending, allVideoLists, allRecommendations)
	if s.logger != nil {
		s.logger.WithField("video_id", id).Info("video deleted")
	}
	return nil
}

func (s *VideoService) ListAdminVideos(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error) {
	return s.api.ListAdminVideos(ctx, params)
}
