package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/mentorly/internal/app/controllers"
	appMigrations "github.com/yigit/mentorly/internal/app/migrations"
	appRoutes "github.com/yigit/mentorly/internal/app/routes"
	appServices "github.com/yigit/mentorly/internal/app/services"
	"github.com/yigit/mentorly/internal/config"
	"github.com/yigit/mentorly/internal/db"
	appMiddleware "github.com/yigit/mentorly/internal/middleware"
	pkgAuth "github.com/yigit/mentorly/internal/pkg/auth"
	"github.com/yigit/mentorly/internal/pkg/logger"
	"github.com/yigit/mentorly/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Gateway         *db.Gateway
	Services        *appServices.Services
	Controllers     appRoutes.Controllers
	SessionResolver *pkgAuth.SessionResolver
	AuthMiddleware  *appMiddleware.AuthMiddleware
	Metrics         *appMiddleware.Metrics
	PublicLimiter   gin.HandlerFunc
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies the embedded SQL migrations
func RunMigrations(ctx context.Context, database db.DB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	count, err := appMigrations.NewMigrator(database, appMigrations.Files(), lgr).Migrate(ctx)
	if err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", count).Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects, migrates and optionally seeds the database.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := RunMigrations(ctx, database.Pool, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, database.Gateway(), lgr); err != nil {
			// Demo data is optional
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, gateway *db.Gateway, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Gateway: gateway,
		Logger:  lgr,
	}

	deps.SessionResolver = pkgAuth.NewSessionResolver(pkgAuth.SessionConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		CookieName: cfg.Auth.CookieName,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionResolver)
	deps.Metrics = appMiddleware.NewMetrics()

	if cfg.RateLimit.Public != "" {
		limiter, err := appMiddleware.RateLimit(cfg.RateLimit.Public)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize rate limiter")
			return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
		}
		deps.PublicLimiter = limiter
	}

	deps.Services = appServices.New(gateway, lgr)

	deps.Controllers = appRoutes.Controllers{
		Booking:    appControllers.NewBookingController(deps.Services.Bookings),
		Coach:      appControllers.NewCoachController(deps.Services.Coaches),
		User:       appControllers.NewUserController(deps.Services.Users),
		Mentor:     appControllers.NewMentorController(deps.Services.Mentors),
		Onboarding: appControllers.NewOnboardingController(deps.Services.Onboarding),
		Profile:    appControllers.NewProfileController(deps.Services.Profiles),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		deps.Metrics.Middleware(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Metrics)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.PublicLimiter)

	return router
}
