package ports

import (
	"time"
)

// Cache is the bounded in-process response cache shared by the resource services.
// A miss is reported through the boolean, never as an error.
type Cache interface {
	// Get returns the value for key and counts a hit. ok=false if absent or expired.
	Get(key string) (value any, ok bool)
	// Set stores value for key with ttl. ttl <= 0 stores an entry that is already expired.
	Set(key string, value any, ttl time.Duration)
	// SetDefault stores value with the cache's default TTL.
	SetDefault(key string, value any)
	// Has reports liveness without counting a hit.
	Has(key string) bool
	// Delete removes the key; absence is not an error.
	Delete(key string)
	// DeleteFunc removes every key for which match returns true and reports how many were removed.
	DeleteFunc(match func(key string) bool) int
	Clear()
	// SweepExpired removes all expired entries and reports how many were removed.
	SweepExpired() int
	Stats() CacheStats
}

// CacheStats is a point-in-time snapshot of the cache.
type CacheStats struct {
	Size     int          `json:"size"`
	Capacity int          `json:"capacity"`
	Entries  []EntryStats `json:"entries"`
}

type EntryStats struct {
	Key  string        `json:"key"`
	Hits int           `json:"hits"`
	Age  time.Duration `json:"age_ns"`
	TTL  time.Duration `json:"ttl_ns"`
}
