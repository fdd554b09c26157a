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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/HectorGitt/MeetDash/pkg/validator"

	"github.com/HectorGitt/MeetDash/internal/adapter/handler"
	"github.com/HectorGitt/MeetDash/internal/adapter/repository"
	"github.com/HectorGitt/MeetDash/internal/infrastructure/cache"
	"github.com/HectorGitt/MeetDash/internal/infrastructure/database"
	"github.com/HectorGitt/MeetDash/internal/usecase/analytics"
	"github.com/HectorGitt/MeetDash/internal/usecase/connector"
	"github.com/HectorGitt/MeetDash/internal/usecase/dashboard"
	"github.com/HectorGitt/MeetDash/internal/usecase/meeting"
	"github.com/HectorGitt/MeetDash/pkg/config"
)

// @title           MeetDash API
// @version         1.0
// @description     Meeting, sentiment and workforce analytics backend

// @host      localhost:8080
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis; the dashboard cache is optional, so failure only warns
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, dashboard caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	sentimentRepo := repository.NewSentimentRepository(db)
	connectorRepo := repository.NewConnectorRepository(db)
	workforceRepo := repository.NewWorkforceRepository(db)

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meeting.NewMeetingService(meetingRepo, participantRepo)
	connectorService := connector.NewConnectorService(connectorRepo)
	analyticsService := analytics.NewAnalyticsService(analyticsRepo, meetingRepo, participantRepo, sentimentRepo, workforceRepo)
	dashboardService := dashboard.NewDashboardService(
		meetingRepo,
		analyticsRepo,
		participantRepo,
		sentimentRepo,
		workforceRepo,
		redisClient,
		cfg.Dashboard.CacheTTL,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	dataHandler := handler.NewDataHandler(meetingService, connectorService, analyticsService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, dashboardService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, dataHandler, analyticsHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
