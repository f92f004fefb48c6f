package catalog

import (
	"strconv"
	"time"
)

// Video mirrors the backend's video document. JSON tags follow the backend wire format
// so responses pass through to browsers unchanged.
type Video struct {
	ID           string       `json:"_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	VideoURL     string       `json:"videoUrl"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	Category     *CategoryRef `json:"category,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Views        int64        `json:"views"`
	Likes        int64        `json:"likes"`
	Duration     int          `json:"duration"`
	Quality      string       `json:"quality,omitempty"`
	Dimensions   *Dimensions  `json:"dimensions,omitempty"`
	IsPublished  bool         `json:"isPublished"`
	UploadedAt   time.Time    `json:"uploadedAt"`
}

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CategoryRef is the category summary embedded in a video.
type CategoryRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalVideos  int  `json:"totalVideos"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
	ItemsPerPage int  `json:"itemsPerPage,omitempty"`
}

// VideoPage is one page of the public video listing.
type VideoPage struct {
	Videos     []Video    `json:"videos"`
	Pagination Pagination `json:"pagination"`
}

// ListVideosParams are the listing filters. Zero values are omitted from the
// backend query and from cache keys.
type ListVideosParams struct {
	Page       int    `json:"page,omitempty" query:"page" validate:"gte=0"`
	Limit      int    `json:"limit,omitempty" query:"limit" validate:"gte=0,lte=100"`
	Category   string `json:"category,omitempty" query:"category"`
	CategoryID string `json:"categoryId,omitempty" query:"categoryId"`
	Sort       string `json:"sort,omitempty" query:"sort"`
	Search     string `json:"search,omitempty" query:"search" validate:"max=200"`
}

// Values returns the set parameters as a flat map keyed by their query names.
func (p ListVideosParams) Values() map[string]string {
	v := make(map[string]string)
	if p.Page > 0 {
		v["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		v["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Category != "" {
		v["category"] = p.Category
	}
	if p.CategoryID != "" {
		v["categoryId"] = p.CategoryID
	}
	if p.Sort != "" {
		v["sort"] = p.Sort
	}
	if p.Search != "" {
		v["search"] = p.Search
	}
	return v
}

type UpdateVideoRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	CategoryID  *string   `json:"category,omitempty" validate:"omitempty,min=1"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	IsPublished *bool     `json:"isPublished,omitempty"`
}

// LikeResult is the backend's answer to a like.
type LikeResult struct {
	Likes int64 `json:"likes"`
}
