package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/ports"
	customMiddleware "github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver/middleware"
)

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
	// Per-client requests per second on mutating public routes; 0 disables limiting
	LikeRateLimit float64
}

type ServerDeps struct {
	VideoService    ports.VideoService
	CategoryService ports.CategoryService
	WarmupService   ports.WarmupService
	Cache           ports.Cache
	TokenVerifier   ports.TokenVerifier
	HealthCheckers  []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	videoSvc       ports.VideoService
	categorySvc    ports.CategoryService
	warmupSvc      ports.WarmupService
	cache          ports.Cache
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		videoSvc:       deps.VideoService,
		categorySvc:    deps.CategoryService,
		warmupSvc:      deps.WarmupService,
		cache:          deps.Cache,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.TokenVerifier,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
