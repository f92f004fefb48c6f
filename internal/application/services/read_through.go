package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

func cacheGet[T any](c ports.Cache, key string) (T, bool) {
	var zero T
	raw, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// readThrough serves key from the cache or, on a miss, from fetch. A successful fetch is
// stored with ttl; a failed one is returned unchanged and nothing is cached. Concurrent
// misses on the same key each call fetch and the last Set wins.
func readThrough[T any](ctx context.Context, c ports.Cache, logger *logrus.Logger, family, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (*catalog.Cached[T], error) {
	if v, ok := cacheGet[T](c, key); ok {
		return &catalog.Cached[T]{Data: v, FromCache: true}, nil
	}

	start := time.Now()
	data, err := fetch(ctx)
	observeFetch(family, start, err)
	if err != nil {
		if logger != nil {
			logger.WithFields(logrus.Fields{"key": key, "family": family}).WithError(err).Warn("backend fetch failed")
		}
		return nil, err
	}

	c.Set(key, data, ttl)
	if logger != nil {
		logger.WithFields(logrus.Fields{"key": key, "ttl": ttl.String()}).Debug("cached backend response")
	}
	return &catalog.Cached[T]{Data: data}, nil
}

// invalidate purges the given keys and key families after a successful mutation.
func invalidate(c ports.Cache, logger *logrus.Logger, mutation string, keys []string, families ...func(string) bool) int {
	n := 0
	for _, key := range keys {
		if c.Has(key) {
			n++
		}
		c.Delete(key)
	}
	for _, match := range families {
		n += c.DeleteFunc(match)
	}
	cacheInvalidations.WithLabelValues(mutation).Add(float64(n))
	if logger != nil {
		logger.WithFields(logrus.Fields{"mutation": mutation, "purged": n}).Debug("invalidated cache after mutation")
	}
	return n
}
