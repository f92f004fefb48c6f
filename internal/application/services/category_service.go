package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

type CategoryService struct {
	api    ports.CatalogAPI
	cache  ports.Cache
	ttl    TTLPolicy
	logger *logrus.Logger
}

func NewCategoryService(api ports.CatalogAPI, cache ports.Cache, ttl TTLPolicy, logger *logrus.Logger) ports.CategoryService {
	return &CategoryService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *CategoryService) ListCategories(ctx context.Context) (*catalog.Cached[[]catalog.Category], error) {
	return readThrough(ctx, s.cache, s.logger, familyCategories, CategoriesKey(), s.ttl.Categories, s.api.ListCategories)
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	return s.api.GetCategoryBySlug(ctx, slug)
}

func (s *CategoryService) ListAdminCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.api.ListAdminCategories(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error) {
	c, err := s.api.CreateCategory(ctx, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("name", req.Name).WithError(err).Error("failed to create category")
		}
		return nil, err
	}
	s.purge("create_category")
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"category_id": c.ID, "slug": c.Slug}).Info("category created")
	}
	return c, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error) {
	c, err := s.api.UpdateCategory(ctx, id, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("category_id", id).WithError(err).Error("failed to update category")
		}
		return nil, err
	}
	s.purge("update_category")
	if s.logger != nil {
		s.logger.WithField("category_id", id).Info("category updated")
	}
	return c, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.WithField("category_id", id).WithError(err).Error("failed to delete category")
		}
		return err
	}
	s.purge("delete_category")
	if s.logger != nil {
		s.logger.WithField("category_id", id).Info("category deleted")
	}
	return nil
}

func (s *CategoryService) ToggleCategory(ctx context.Context, id string) (*catalog.Category, error) {
	c, err := s.api.ToggleCategory(ctx, id)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("category_id", id).WithError(err).Error("failed to toggle category")
		}
		return nil, err
	}
	s.purge("toggle_category")
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"category_id": id, "active": c.IsActive}).Info("category toggled")
	}
	return c, nil
}

// purge drops the category list and every video list page; list pages embed the
// category name and color of each video.
func (s *CategoryService) purge(mutation string) {
	invalidate(s.cache, s.logger, mutation, []string{CategoriesKey()}, allVideoLists)
}
