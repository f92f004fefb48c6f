package catalogapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

func (c *Client) ListVideos(ctx context.Context, params catalog.ListVideosParams) (*catalog.VideoPage, error) {
	q := url.Values{}
	for k, v := range params.Values() {
		q.Set(k, v)
	}
	var page catalog.VideoPage
	if err := c.do(ctx, http.MethodGet, "/videos", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) TrendingVideos(ctx context.Context, limit int) ([]catalog.Video, error) {
	var list videoList
	if err := c.do(ctx, http.MethodGet, "/videos/trending", limitQuery(limit), nil, &list); err != nil {
		return nil, err
	}
	return list.Videos, nil
}

func (c *Client) GetVideo(ctx context.Context, id string) (*catalog.Video, error) {
	var v catalog.Video
	if err := c.do(ctx, http.MethodGet, "/videos/"+url.PathEscape(id), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Recommendations(ctx context.Context, id string, limit int) ([]catalog.Video, error) {
	var list videoList
	path := "/videos/" + url.PathEscape(id) + "/recommendations"
	if err := c.do(ctx, http.MethodGet, path, limitQuery(limit), nil, &list); err != nil {
		return nil, err
	}
	return list.Videos, nil
}

func (c *Client) LikeVideo(ctx context.Context, id string) (*catalog.LikeResult, error) {
	var res catalog.LikeResult
	if err := c.do(ctx, http.MethodPost, "/videos/"+url.PathEscape(id)+"/like", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateVideo(ctx context.Context, id string, req *catalog.UpdateVideoRequest) (*catalog.Video, error) {
	var v catalog.Video
	if err := c.do(ctx, http.MethodPut, "/videos/"+url.PathEscape(id), nil, req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/videos/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListAdminVideos(ctx context.Context, params catalog.AdminVideoParams) (*catalog.VideoPage, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	var page catalog.VideoPage
	if err := c.do(ctx, http.MethodGet, "/videos/admin/all", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
