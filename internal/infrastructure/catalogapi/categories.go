package catalogapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var cats []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var cat catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(slug), nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) ListAdminCategories(ctx context.Context) ([]catalog.Category, error) {
	var cats []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories/admin/all", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) CreateCategory(ctx context.Context, req *catalog.CreateCategoryRequest) (*catalog.Category, error) {
	var cat catalog.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req *catalog.UpdateCategoryRequest) (*catalog.Category, error) {
	var cat catalog.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ToggleCategory(ctx context.Context, id string) (*catalog.Category, error) {
	var cat catalog.Category
	if err := c.do(ctx, http.MethodPatch, "/categories/"+url.PathEscape(id)+"/toggle", nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Ping checks that the backend answers the public category listing.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/categories", nil, nil, nil)
}
