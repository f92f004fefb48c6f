package services

import (
	"fmt"
	"time"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

// TTLPolicy holds the lifetime of each cached resource family.
type TTLPolicy struct {
	Trending        time.Duration
	Videos          time.Duration
	Video           time.Duration
	Recommendations time.Duration
	Categories      time.Duration
}

func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Trending:        90 * time.Second,
		Videos:          3 * time.Minute,
		Video:           15 * time.Minute,
		Recommendations: 10 * time.Minute,
		Categories:      30 * time.Minute,
	}
}

// Validate checks the ordering the families rely on: trending is the most volatile,
// list pages come next, single videos and recommendations sit in the middle and the
// category list lives longest.
func (p TTLPolicy) Validate() error {
	for _, f := range []struct {
		name string
		ttl  time.Duration
	}{
		{familyTrending, p.Trending},
		{familyVideos, p.Videos},
		{familyVideo, p.Video},
		{familyRecommendations, p.Recommendations},
		{familyCategories, p.Categories},
	} {
		if f.ttl <= 0 {
			return fmt.Errorf("%w: %s ttl must be positive, got %s", catalog.ErrInvalidTTLPolicy, f.name, f.ttl)
		}
	}
	middleLow := min(p.Video, p.Recommendations)
	middleHigh := max(p.Video, p.Recommendations)
	switch {
	case p.Trending >= p.Videos:
		return fmt.Errorf("%w: trending (%s) must be shorter than videos (%s)", catalog.ErrInvalidTTLPolicy, p.Trending, p.Videos)
	case p.Videos >= middleLow:
		return fmt.Errorf("%w: videos (%s) must be shorter than video and recommendations (%s)", catalog.ErrInvalidTTLPolicy, p.Videos, middleLow)
	case middleHigh >= p.Categories:
		return fmt.Errorf("%w: categories (%s) must be longer than video and recommendations (%s)", catalog.ErrInvalidTTLPolicy, p.Categories, middleHigh)
	}
	return nil
}
