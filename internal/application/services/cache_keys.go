package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
)

// Cache key families. Every key is "<family>:<params>" except the category list.
const (
	familyVideos          = "videos"
	familyVideo           = "video"
	familyTrending        = "trending"
	familyRecommendations = "rec"
	familyCategories      = "categories"
)

const (
	DefaultTrendingLimit        = 10
	DefaultRecommendationsLimit = 8
)

// VideosKey derives the list key from the set parameters. The parameters are encoded as a
// JSON object; encoding/json sorts map keys, so equal parameters always give equal keys.
func VideosKey(params catalog.ListVideosParams) string {
	b, err := json.Marshal(params.Values())
	if err != nil {
		// map[string]string always marshals
		panic(err)
	}
	return familyVideos + ":" + string(b)
}

func VideoKey(id string) string {
	return familyVideo + ":" + id
}

func TrendingKey(limit int) string {
	return fmt.Sprintf("%s:%d", familyTrending, limit)
}

func RecommendationsKey(id string, limit int) string {
	return fmt.Sprintf("%s:%s:%d", familyRecommendations, id, limit)
}

func CategoriesKey() string {
	return familyCategories
}

func hasPrefix(prefix string) func(string) bool {
	return func(key string) bool { return strings.HasPrefix(key, prefix) }
}

var (
	allVideoLists      = hasPrefix(familyVideos + ":")
	allTrending        = hasPrefix(familyTrending + ":")
	allRecommendations = hasPrefix(familyRecommendations + ":")
)
