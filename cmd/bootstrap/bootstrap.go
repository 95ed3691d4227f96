package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"prenatal-care-api/config"
	deliveryHttp "prenatal-care-api/internal/delivery/http"
	"prenatal-care-api/internal/delivery/http/handler"
	"prenatal-care-api/internal/delivery/http/middleware"
	"prenatal-care-api/internal/infrastructure/cache"
	"prenatal-care-api/internal/infrastructure/database"
	"prenatal-care-api/internal/repository"
	"prenatal-care-api/internal/service"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/jwt"
	"prenatal-care-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	AuthUsecase usecase.AuthUsecase
}

// NewLogger returns a JSON logger on stdout at the given level, falling back to
// info when the level is not recognised.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// LoadConfig loads configuration and builds the logger it describes.
func LoadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, NewLogger(cfg.Log.Level), nil
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, log, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log.Info("Configuration loaded successfully")

	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.initializeServer()

	return app, nil
}

// initializeServer wires repositories, usecases and handlers into the HTTP server.
func (app *App) initializeServer() {
	cfg, db, log := app.Config, app.DB, app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	clock := usecase.NewClock(cfg.App.Location)

	// Repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	visitRepo := repository.NewVisitRepository()
	examRepo := repository.NewExamRepository()
	portalRepo := repository.NewPortalAccountRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	logEntryRepo := repository.NewLogEntryRepository()
	reminderRepo := repository.NewReminderRepository()
	reportRepo := repository.NewReportRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	tokenStore := service.NewRedisTokenStore(app.RedisClient, log)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, jwtService, tokenStore)
	patientUsecase := usecase.NewPatientUsecase(db, log, clock, patientRepo, visitRepo, examRepo, portalRepo, auditService)
	visitUsecase := usecase.NewVisitUsecase(db, log, patientRepo, visitRepo, auditService)
	examUsecase := usecase.NewExamUsecase(db, log, patientRepo, examRepo, auditService)
	portalUsecase := usecase.NewPortalUsecase(db, log, clock, patientRepo, portalRepo, appointmentRepo, logEntryRepo, reminderRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, clock, portalRepo, appointmentRepo)
	logEntryUsecase := usecase.NewLogEntryUsecase(db, log, clock, portalRepo, logEntryRepo)
	reminderUsecase := usecase.NewReminderUsecase(db, log, clock, portalRepo, reminderRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, clock, reportRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	app.AuthUsecase = authUsecase

	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator),
		Patient:     handler.NewPatientHandler(patientUsecase, customValidator),
		Visit:       handler.NewVisitHandler(visitUsecase, customValidator),
		Exam:        handler.NewExamHandler(examUsecase, customValidator),
		Portal:      handler.NewPortalHandler(portalUsecase, customValidator),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		LogEntry:    handler.NewLogEntryHandler(logEntryUsecase, customValidator),
		Reminder:    handler.NewReminderHandler(reminderUsecase, customValidator),
		Report:      handler.NewReportHandler(reportUsecase, customValidator),
		AuditLog:    handler.NewAuditLogHandler(auditLogUsecase, customValidator),
	}

	router := deliveryHttp.NewRouter(
		handlers,
		middleware.NewAuthMiddleware(jwtService, tokenStore, log),
		middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
		middleware.NewLoggingMiddleware(log),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.WithFields(logrus.Fields{
			"port": app.Config.App.Port,
			"env":  app.Config.App.Env,
		}).Info("Server starting")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	err := g.Wait()
	app.Close()
	app.Log.Info("Server shutdown complete")
	return err
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			app.Log.Warnf("Failed to close database: %+v", err)
		}
	}

	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %+v", err)
		}
	}
}
