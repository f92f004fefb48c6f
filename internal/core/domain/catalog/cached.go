package catalog

// Cached wraps a read-through result with whether it was served from the cache.
type Cached[T any] struct {
	Data      T    `json:"data"`
	FromCache bool `json:"from_cache"`
}

// AdminVideoParams filters the admin video listing. It is passed through uncached.
type AdminVideoParams struct {
	Page     int    `query:"page" validate:"gte=0"`
	Limit    int    `query:"limit" validate:"gte=0,lte=100"`
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status" validate:"omitempty,oneof=published draft all"`
}
