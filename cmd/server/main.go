package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	invoicingapp "github.com/mobilitree/backend/internal/application/invoicing"
	parkingapp "github.com/mobilitree/backend/internal/application/parking"
	tariffapp "github.com/mobilitree/backend/internal/application/tariff"
	domaintariff "github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/mobilitree/backend/internal/infrastructure/cache"
	"github.com/mobilitree/backend/internal/infrastructure/config"
	"github.com/mobilitree/backend/internal/infrastructure/logger"
	"github.com/mobilitree/backend/internal/infrastructure/persistence"
	"github.com/mobilitree/backend/internal/infrastructure/telemetry"
	"github.com/mobilitree/backend/internal/interfaces/http/handler"
	"github.com/mobilitree/backend/internal/interfaces/http/middleware"
	"github.com/mobilitree/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting parking backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	facilityRepo := persistence.NewGormFacilityRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	// Wrap the schedule repository with a Redis read-through cache (if enabled)
	var scheduleRepo domaintariff.ScheduleRepository = facilityRepo
	var scheduleCache *cache.RedisScheduleCache
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		scheduleCache = cache.NewRedisScheduleCache(facilityRepo, redisClient, cfg.Cache.ScheduleTTL, log)
		scheduleRepo = scheduleCache
		defer func() {
			if err := scheduleCache.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		log.Info("Schedule cache enabled",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Duration("ttl", cfg.Cache.ScheduleTTL),
		)
	}

	// Initialize application services
	invoiceService := invoicingapp.NewInvoiceService(sessionRepo, scheduleRepo, customerRepo, log)
	sessionService := parkingapp.NewSessionService(sessionRepo, log)
	scheduleService := tariffapp.NewScheduleService(scheduleRepo, log)

	// Initialize HTTP handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	facilityHandler := handler.NewFacilityHandler(scheduleService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - OpenTelemetry spans (if enabled)
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.CORS())

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(invoiceHandler)
	r.Register(sessionHandler)
	r.Register(facilityHandler)
	r.Setup()

	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
