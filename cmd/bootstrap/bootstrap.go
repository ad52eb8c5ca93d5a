package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kbeauty-insider/config"
	deliveryHttp "kbeauty-insider/internal/delivery/http"
	"kbeauty-insider/internal/delivery/http/handler"
	"kbeauty-insider/internal/delivery/http/middleware"
	"kbeauty-insider/internal/infrastructure/cache"
	"kbeauty-insider/internal/infrastructure/database"
	"kbeauty-insider/internal/repository"
	"kbeauty-insider/internal/usecase"
	"kbeauty-insider/pkg/jwt"
	"kbeauty-insider/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations (tables + stamp eligibility trigger)
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis when configured; the exchange-rate cache degrades
	// gracefully without it.
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Warn("REDIS_HOST not set, running without exchange-rate cache")
	}

	// Initialize all layers
	server := initializeServer(cfg, db, app.RedisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository()
	procedureRepo := repository.NewProcedureRepository()
	clinicRepo := repository.NewClinicRepository()
	reservationRepo := repository.NewReservationRepository()
	stampRepo := repository.NewStampRepository()
	settingRepo := repository.NewSettingRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	exchangeRateUsecase := usecase.NewExchangeRateUsecase(db, log, settingRepo, redisClient, cfg.Exchange)
	procedureUsecase := usecase.NewProcedureUsecase(db, log, procedureRepo, exchangeRateUsecase)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo)
	reservationUsecase := usecase.NewReservationUsecase(db, log, reservationRepo)
	stampUsecase := usecase.NewStampUsecase(db, log, stampRepo, reservationRepo)

	// Initialize handlers
	procedureHandler := handler.NewProcedureHandler(procedureUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	reservationHandler := handler.NewReservationHandler(reservationUsecase, customValidator)
	stampHandler := handler.NewStampHandler(stampUsecase, customValidator)
	profileHandler := handler.NewProfileHandler()
	exchangeRateHandler := handler.NewExchangeRateHandler(exchangeRateUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	adminMiddleware := middleware.NewAdminMiddleware(db, log, profileRepo)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		procedureHandler,
		clinicHandler,
		reservationHandler,
		stampHandler,
		profileHandler,
		exchangeRateHandler,
		authMiddleware,
		adminMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
