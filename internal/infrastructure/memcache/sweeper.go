package memcache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/ports"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/jobs"
)

// NewSweeper returns a periodic job that drops expired entries so that unread
// entries do not hold capacity until the next eviction.
func NewSweeper(cache ports.Cache, interval time.Duration, logger *logrus.Logger) *jobs.Periodic {
	return jobs.NewPeriodic("cache-sweep", interval, func(ctx context.Context) {
		removed := cache.SweepExpired()
		if logger != nil && removed > 0 {
			logger.WithField("removed", removed).Debug("swept expired cache entries")
		}
	}, logger)
}
