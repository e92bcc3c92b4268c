package app

import (
	"fmt"

	"careswipe_backend/internal/config"
	"careswipe_backend/internal/database"
	"careswipe_backend/internal/email"
	"careswipe_backend/internal/handlers"
	"careswipe_backend/internal/logger"
	"careswipe_backend/internal/middleware"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/routes"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run loads configuration, connects storage, wires the object graph and
// serves HTTP until the process exits.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	engine := SetupRouter(db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting HTTP server", "addr", addr, "env", cfg.Server.Env)
	return engine.Run(addr)
}

// SetupRouter builds a fully wired Gin engine around the given db handle.
// Tests call it directly with an in-memory database.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.DBMiddleware(db))

	v := validator.New()
	sc := initializeServices(cfg)
	appHandlers := handlers.NewAppHandlers(sc, v)

	routes.RegisterRoutes(engine, appHandlers)
	return engine
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobPostRepository()
	swipeRepo := repositories.NewSwipeRepository()
	matchRepo := repositories.NewMatchRepository()
	reviewRepo := repositories.NewReviewRepository()

	emails := newEmailProvider(cfg)

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, profileRepo),
		ProfileService: services.NewProfileService(profileRepo),
		SwipeService:   services.NewSwipeService(swipeRepo, matchRepo, jobRepo, profileRepo, userRepo, emails),
		FeedService: services.NewFeedService(
			swipeRepo, jobRepo, profileRepo, reviewRepo,
			cfg.Feed.DefaultLimit, cfg.Feed.MaxLimit,
		),
		JobService:    services.NewJobService(jobRepo, profileRepo),
		ReviewService: services.NewReviewService(reviewRepo, profileRepo, matchRepo),
	}
}

// newEmailProvider picks SMTP when configured, otherwise a mock that only
// logs. Development and test environments rarely have a mail relay.
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Info("No SMTP host configured, using mock email provider")
		return email.NewMockProvider()
	}
	return email.NewSMTPProvider(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
	})
}
