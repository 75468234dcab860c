package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront-admin/internal/config"
	"storefront-admin/internal/database"
	custommiddleware "storefront-admin/internal/middleware"
	"storefront-admin/internal/service"
	"storefront-admin/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const closeTimeout = 5 * time.Second

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	store  *database.Store
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, store *database.Store) *Server {
	server := &Server{
		config: cfg,
		logger: logger,
		store:  store,
	}

	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(custommiddleware.LoggingMiddleware(logger))

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		router.Use(custommiddleware.NewMetrics(registry).Middleware)
	}

	router.Use(custommiddleware.ErrorHandlingMiddleware(logger, cfg.Server.IsDevelopment()))
	router.Use(custommiddleware.SecurityHeaders)
	router.Use(custommiddleware.OriginGuard(cfg.CORS.AllowedOrigins))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestSize(cfg.Server.BodyLimit))
	router.Use(middleware.Compress(5))

	if registry != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Initialize services
	categoryService := service.NewCategoryService(store.Categories)
	bannerService := service.NewBannerService(store.Banners)

	// Initialize handlers
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)
	bannerHandler := transport.NewBannerHandler(bannerService, logger)
	systemHandler := transport.NewSystemHandler(store, logger)

	// Register routes
	router.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			server.redis = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			r.Use(custommiddleware.RateLimitMiddleware(server.redis, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.Requests,
				Window:            cfg.RateLimit.Window,
				KeyPrefix:         "ratelimit:api",
			}, logger))
		}

		categoryHandler.RegisterRoutes(r)
		bannerHandler.RegisterRoutes(r)
	})
	systemHandler.RegisterRoutes(router)

	server.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	// Close database connection
	if err := s.store.Close(ctx); err != nil {
		s.logger.Error("Failed to close database connection", zap.Error(err))
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
