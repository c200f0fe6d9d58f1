// Package bootstrap wires configuration, storage, services and HTTP routing
// together for the server entry point.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/alumnihub/internal/app/controllers"
	appMigrations "github.com/emre/alumnihub/internal/app/migrations"
	"github.com/emre/alumnihub/internal/app/notify"
	appRepos "github.com/emre/alumnihub/internal/app/repositories"
	appRoutes "github.com/emre/alumnihub/internal/app/routes"
	appServices "github.com/emre/alumnihub/internal/app/services"
	"github.com/emre/alumnihub/internal/config"
	"github.com/emre/alumnihub/internal/db"
	appMiddleware "github.com/emre/alumnihub/internal/middleware"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	pkgAuth "github.com/emre/alumnihub/internal/pkg/auth"
	"github.com/emre/alumnihub/internal/pkg/email"
	"github.com/emre/alumnihub/internal/pkg/filestorage"
	"github.com/emre/alumnihub/internal/pkg/logger"
	"github.com/emre/alumnihub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Notifier    *notify.Worker

	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	AlumnusController *appControllers.AlumnusController
	CourseController  *appControllers.CourseController
	EventController   *appControllers.EventController
	ForumController   *appControllers.ForumController
	CareerController  *appControllers.CareerController
	SiteController    *appControllers.SiteController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(dbPool)
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, the notification
// worker and the controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiry(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, lgr)

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.Notifier = notify.NewWorker(deps.Repos.OutboxRepository, sender, notify.Config{
		PollInterval: cfg.NotifierPollInterval(),
		BatchSize:    cfg.Notifier.BatchSize,
		MaxAttempts:  cfg.Notifier.MaxAttempts,
	}, logger.WithField("component", "notifier"))

	cookieMaxAge := int(cfg.TokenExpiry().Seconds())
	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, cfg.JWT.CookieName, cookieMaxAge)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.AlumnusController = appControllers.NewAlumnusController(deps.Services.AlumnusService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService)
	deps.ForumController = appControllers.NewForumController(deps.Services.ForumService)
	deps.CareerController = appControllers.NewCareerController(deps.Services.CareerService)
	deps.SiteController = appControllers.NewSiteController(deps.Services.SiteService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.AlumnusController,
		deps.CourseController,
		deps.EventController,
		deps.ForumController,
		deps.CareerController,
		deps.SiteController,
		deps.JWTService,
		cfg.JWT.CookieName,
	)

	// Uploaded avatars are served straight from disk
	router.Static(cfg.Server.PublicURL, cfg.Server.StoragePath)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.HandleAPIError(c, apperrors.NewNotFoundError("Route not found"))
	})

	return router
}
