package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcare-backend/config"
	deliveryHttp "healthcare-backend/internal/delivery/http"
	"healthcare-backend/internal/delivery/http/handler"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/infrastructure/cache"
	"healthcare-backend/internal/infrastructure/database"
	"healthcare-backend/internal/infrastructure/mail"
	"healthcare-backend/internal/infrastructure/storage"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/service"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/jwt"
	"healthcare-backend/pkg/validator"

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

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logrus.Info("Database migrations applied")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize object storage
	s3Client, err := storage.NewS3Client(context.Background(), cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	logrus.Infof("S3 client ready for bucket %s", cfg.Storage.Bucket)

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, s3Client)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Client *storage.S3Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewUserProfileRepository()
	patientInfoRepo := repository.NewPatientInfoRepository()
	doctorRepo := repository.NewDoctorRepository()
	instructorRepo := repository.NewInstructorRepository()
	twoFactorRepo := repository.NewTwoFactorAuthRepository()
	likeDoctorRepo := repository.NewLikeDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	feedbackRepo := repository.NewFeedbackRepository()
	toDoRepo := repository.NewToDoRepository()
	vitalsRepo := repository.NewVitalsRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	mediaService := service.NewMediaService(s3Client, redisClient, cfg.Storage.SignedURLCacheTTL, log)
	mailer := mail.NewSMTPMailer(cfg.Mail)
	confirmationService := service.NewConfirmationService(redisClient, mailer, cfg.App.SiteURL, cfg.Account.ConfirmationExpiry, log)

	// Initialize usecases
	accountUsecase := usecase.NewAccountUsecase(db, log, cfg.Account, cfg.Storage,
		userRepo, profileRepo, patientInfoRepo, doctorRepo, instructorRepo, twoFactorRepo,
		auditService, mediaService, confirmationService)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, auditService, jwtService, redisClient)
	completionUsecase := usecase.NewProfileCompletionUsecase(db, log, userRepo, profileRepo, patientInfoRepo, doctorRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, likeDoctorRepo)
	likeDoctorUsecase := usecase.NewLikeDoctorUsecase(db, log, doctorRepo, likeDoctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, auditService)
	feedbackUsecase := usecase.NewFeedbackUsecase(db, log, feedbackRepo, auditService)
	toDoUsecase := usecase.NewToDoUsecase(db, log, toDoRepo)
	vitalsUsecase := usecase.NewVitalsUsecase(db, log, patientInfoRepo, vitalsRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, accountUsecase, customValidator, jwtService)
	userHandler := handler.NewUserHandler(accountUsecase, completionUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, likeDoctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase, customValidator)
	toDoHandler := handler.NewToDoHandler(toDoUsecase, customValidator)
	vitalsHandler := handler.NewVitalsHandler(vitalsUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		doctorHandler,
		appointmentHandler,
		feedbackHandler,
		toDoHandler,
		vitalsHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
