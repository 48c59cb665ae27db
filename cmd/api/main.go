package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sportmap-ro/backend/internal/adapters/cache"
	"github.com/sportmap-ro/backend/internal/adapters/database"
	"github.com/sportmap-ro/backend/internal/adapters/events"
	"github.com/sportmap-ro/backend/internal/adapters/search"
	"github.com/sportmap-ro/backend/internal/api/handlers"
	"github.com/sportmap-ro/backend/internal/api/middleware"
	"github.com/sportmap-ro/backend/internal/api/routes"
	"github.com/sportmap-ro/backend/internal/application/services"
	"github.com/sportmap-ro/backend/internal/domain/providers"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/postgres"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/redis"
	"github.com/sportmap-ro/backend/internal/infrastructure/clients/typesense"
	"github.com/sportmap-ro/backend/internal/infrastructure/observability"
	"github.com/sportmap-ro/backend/pkg/config"
)

func main() {

	// Load .env if present (development convenience, production uses real env vars)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Failed to load .env file: %v", err)
	}

	// Load configuration

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize event bus for listing update notifications
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Initialize adapters

	baseFacilityAdapter := database.NewFacilityAdapter(pgClient)

	// Wrap with caching if Redis is available (for read performance optimization)
	var facilityAdapter repositories.FacilityRepository
	if cacheProvider != nil {
		facilityAdapter = database.NewCachedFacilityAdapter(baseFacilityAdapter, cacheProvider)
		log.Println("Facility adapter wrapped with caching layer")
	} else {
		facilityAdapter = baseFacilityAdapter
		log.Println("Facility adapter running without cache (Redis unavailable)")
	}

	fieldAdapter := database.NewSportsFieldAdapter(pgClient)
	coachAdapter := database.NewCoachAdapter(pgClient)
	seoAdapter := database.NewSEOPageAdapter(pgClient)
	suggestionAdapter := database.NewSuggestionAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)

	var searchRepo repositories.FacilitySearchRepository

	if typesenseClient != nil {

		adapter := search.NewTypesenseAdapter(typesenseClient)

		// Ensure schema exists

		if err := adapter.InitSchema(context.Background()); err != nil {

			log.Printf("Warning: Failed to init Typesense schema: %v", err)

		}

		searchRepo = adapter

	}

	// Initialize services

	facilityService := services.NewFacilityService(facilityAdapter, searchRepo, eventBus)
	facilityService.SetUserRepo(userAdapter)
	scheduleService := services.NewScheduleService(facilityAdapter, fieldAdapter, &cfg.Schedule)
	scheduleService.SetEventBus(eventBus)
	coachService := services.NewCoachService(coachAdapter)
	seoService := services.NewSEOService(seoAdapter)
	suggestionService := services.NewSuggestionService(suggestionAdapter)
	exportService := services.NewExportService(facilityAdapter, coachAdapter)

	// Initialize cache invalidation service
	var cacheInvalidationService *services.CacheInvalidationService
	if cacheProvider != nil && eventBus != nil {
		cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidationService.Start(); err != nil {
			log.Printf("Warning: Failed to start cache invalidation service: %v", err)
		} else {
			log.Println("Cache invalidation service started successfully")
		}
	}

	// Initialize handlers

	facilityHandler := handlers.NewFacilityHandler(facilityService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	coachHandler := handlers.NewCoachHandler(coachService)
	seoHandler := handlers.NewSEOHandler(seoService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, cacheProvider)
	adminHandler := handlers.NewAdminHandler(facilityService, coachService, suggestionService, exportService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router

	router := routes.NewRouter(
		facilityHandler,
		scheduleHandler,
		coachHandler,
		seoHandler,
		suggestionHandler,
		adminHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	// Stop cache invalidation service
	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}

	log.Println("Server stopped")
}
