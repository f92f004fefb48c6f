package catalog

import "time"

type Category struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Color        string    `json:"color,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	VideoCount   int       `json:"videoCount"`
	IsActive     bool      `json:"isActive"`
	SortOrder    int       `json:"sortOrder,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon        string `json:"icon,omitempty" validate:"max=50"`
	SortOrder   int    `json:"sortOrder,omitempty" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	SortOrder   *int    `json:"sortOrder,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
