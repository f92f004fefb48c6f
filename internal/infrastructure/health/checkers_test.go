package health_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avatarctic/catalog-edge/internal/infrastructure/health"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/memcache"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestBackendHealthChecker(t *testing.T) {
	ok := health.NewBackendHealthChecker(pingerFunc(func(ctx context.Context) error { return nil }))
	assert.Equal(t, "catalog_backend", ok.Name())
	assert.NoError(t, ok.Check(context.Background()))

	down := health.NewBackendHealthChecker(pingerFunc(func(ctx context.Context) error { return errors.New("refused") }))
	assert.Error(t, down.Check(context.Background()))
}

func TestCacheHealthChecker(t *testing.T) {
	store := memcache.NewStore(2, time.Minute)
	store.SetDefault("a", 1)
	store.SetDefault("b", 2)
	store.SetDefault("c", 3)

	hc := health.NewCacheHealthChecker(store)
	assert.Equal(t, "response_cache", hc.Name())
	assert.NoError(t, hc.Check(context.Background()))
}
