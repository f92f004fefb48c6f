package health

import (
	"context"
	"fmt"

	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

// Pinger is satisfied by the catalog backend client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// backendHealthChecker probes the catalog backend.
type backendHealthChecker struct{ backend Pinger }

func (b *backendHealthChecker) Name() string                    { return "catalog_backend" }
func (b *backendHealthChecker) Check(ctx context.Context) error { return b.backend.Ping(ctx) }

// cacheHealthChecker reports the response cache as unhealthy when it holds more entries
// than its capacity allows.
type cacheHealthChecker struct{ cache ports.Cache }

func (c *cacheHealthChecker) Name() string { return "response_cache" }
func (c *cacheHealthChecker) Check(ctx context.Context) error {
	st := c.cache.Stats()
	if st.Capacity > 0 && st.Size > st.Capacity {
		return fmt.Errorf("cache holds %d entries, capacity is %d", st.Size, st.Capacity)
	}
	return nil
}

// NewBackendHealthChecker creates a health checker for the catalog backend.
func NewBackendHealthChecker(backend Pinger) ports.HealthChecker {
	return &backendHealthChecker{backend: backend}
}

// NewCacheHealthChecker creates a health checker for the response cache.
func NewCacheHealthChecker(cache ports.Cache) ports.HealthChecker {
	return &cacheHealthChecker{cache: cache}
}
