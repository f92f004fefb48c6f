package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Cache   CacheConfig
	JWT     JWTConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
	LikeRateLimit  float64
}

// BackendConfig points at the catalog REST API the edge service fronts.
type BackendConfig struct {
	URL          string
	ServiceToken string
	Timeout      time.Duration
	// Circuit breaker settings
	BreakerMaxRequests      uint32
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
	BreakerFailureThreshold float64
	BreakerMinRequests      uint32
}

type CacheConfig struct {
	Capacity      int
	DefaultTTL    time.Duration
	SweepInterval time.Duration // 0 disables the background sweep
	WarmInterval  time.Duration // 0 disables periodic warm-up
	PreloadOnBoot bool
	// Per-family lifetimes
	TrendingTTL        time.Duration
	VideosTTL          time.Duration
	VideoTTL           time.Duration
	RecommendationsTTL time.Duration
	CategoriesTTL      time.Duration
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
			AllowedOrigins: getListEnv("ALLOWED_ORIGINS"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			LikeRateLimit:  getFloatEnv("LIKE_RATE_LIMIT_RPS", 1),
		},
		Backend: BackendConfig{
			URL:                     getEnv("CATALOG_API_URL", "http://localhost:5000"),
			ServiceToken:            getEnv("CATALOG_API_TOKEN", ""),
			Timeout:                 getDurationEnv("CATALOG_API_TIMEOUT", 30*time.Second),
			BreakerMaxRequests:      uint32(getIntEnv("CATALOG_BREAKER_MAX_REQUESTS", 5)),
			BreakerInterval:         getDurationEnv("CATALOG_BREAKER_INTERVAL", 30*time.Second),
			BreakerTimeout:          getDurationEnv("CATALOG_BREAKER_TIMEOUT", 60*time.Second),
			BreakerFailureThreshold: getFloatEnv("CATALOG_BREAKER_FAILURE_RATIO", 0.8),
			BreakerMinRequests:      uint32(getIntEnv("CATALOG_BREAKER_MIN_REQUESTS", 5)),
		},
		Cache: CacheConfig{
			Capacity:           getIntEnv("CACHE_CAPACITY", 100),
			DefaultTTL:         getDurationEnv("CACHE_DEFAULT_TTL", 5*time.Minute),
			SweepInterval:      getDurationEnv("CACHE_SWEEP_INTERVAL", 5*time.Minute),
			WarmInterval:       getDurationEnv("CACHE_WARM_INTERVAL", 0),
			PreloadOnBoot:      getBoolEnv("CACHE_PRELOAD", true),
			TrendingTTL:        getDurationEnv("CACHE_TTL_TRENDING", 90*time.Second),
			VideosTTL:          getDurationEnv("CACHE_TTL_VIDEOS", 3*time.Minute),
			VideoTTL:           getDurationEnv("CACHE_TTL_VIDEO", 15*time.Minute),
			RecommendationsTTL: getDurationEnv("CACHE_TTL_RECOMMENDATIONS", 10*time.Minute),
			CategoriesTTL:      getDurationEnv("CACHE_TTL_CATEGORIES", 30*time.Minute),
		},
		JWT: JWTConfig{
			Secret: getEnvRequired("JWT_SECRET"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Cache.Capacity <= 0 {
		return nil, fmt.Errorf("CACHE_CAPACITY must be positive, got %d", cfg.Cache.Capacity)
	}
	if cfg.Cache.DefaultTTL <= 0 {
		return nil, fmt.Errorf("CACHE_DEFAULT_TTL must be positive, got %s", cfg.Cache.DefaultTTL)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getListEnv splits a comma-separated variable, dropping empty items.
func getListEnv(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
