package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"symptocare-backend/config"
	deliveryHttp "symptocare-backend/internal/delivery/http"
	"symptocare-backend/internal/delivery/http/handler"
	"symptocare-backend/internal/delivery/http/middleware"
	"symptocare-backend/internal/infrastructure/cache"
	"symptocare-backend/internal/infrastructure/database"
	"symptocare-backend/internal/repository"
	"symptocare-backend/internal/service"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/jwt"
	"symptocare-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const migrationsPath = "db/migrations"

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

	// Apply database migrations
	if err := database.RunMigrations(cfg.DB, migrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
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

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	doctorRepo := repository.NewDoctorRepository()
	applicationRepo := repository.NewDoctorApplicationRepository()
	approvalRepo := repository.NewApprovalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicineRepo := repository.NewMedicineRepository()
	orderRepo := repository.NewMedicineOrderRepository()
	postRepo := repository.NewPostRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	symptomAnalyzer := service.NewSymptomAnalyzer(cfg.Gemini, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, doctorRepo, applicationRepo, auditService, jwtService, redisClient)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	applicationUsecase := usecase.NewApplicationUsecase(db, log, applicationRepo, approvalRepo, doctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorUsecase, auditService)
	medicineUsecase := usecase.NewMedicineUsecase(db, log, medicineRepo, orderRepo, auditService)
	feedUsecase := usecase.NewFeedUsecase(db, log, postRepo, auditService)
	symptomUsecase := usecase.NewSymptomUsecase(log, symptomAnalyzer, redisClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	applicationHandler := handler.NewApplicationHandler(applicationUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	medicineHandler := handler.NewMedicineHandler(medicineUsecase, customValidator)
	feedHandler := handler.NewFeedHandler(feedUsecase, customValidator)
	symptomHandler := handler.NewSymptomHandler(symptomUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		applicationHandler,
		appointmentHandler,
		medicineHandler,
		feedHandler,
		symptomHandler,
		auditLogHandler,
		authMiddleware,
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
