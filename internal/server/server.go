package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"portfolio_api/internal/config"
	"portfolio_api/internal/database"
	"portfolio_api/internal/handlers"
	applog "portfolio_api/internal/log"
	"portfolio_api/internal/mailer"
	"portfolio_api/internal/middlewares"
	"portfolio_api/internal/repositories"
	"portfolio_api/internal/routes"
	"portfolio_api/internal/services"
)

// Stores are the external collaborators the router is built on. Objects and
// Denylist may be nil.
type Stores struct {
	Projects     services.ProjectStore
	WebProjects  services.ProjectStore
	Skills       services.SkillStore
	Tools        services.ToolStore
	PersonalInfo services.PersonalInfoStore
	Contacts     services.ContactStore
	Bookings     services.BookingStore
	Objects      services.ObjectStore
	Denylist     services.TokenDenylist
	Health       handlers.HealthChecker
	Mailer       mailer.Mailer
}

// NewRouter wires services, handlers and routes over stores.
func NewRouter(cfg *config.Config, stores Stores) (*gin.Engine, error) {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authService, err := services.NewAuthService(cfg.Auth, stores.Denylist)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	m := stores.Mailer
	if m == nil {
		m = mailer.NopMailer{}
	}
	notificationService, err := services.NewNotificationService(m, cfg.Mail)
	if err != nil {
		return nil, err
	}

	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Projects:     handlers.NewProjectHandler(services.NewProjectService(stores.Projects)),
		WebProjects:  handlers.NewWebProjectHandler(services.NewWebProjectService(stores.WebProjects)),
		Skills:       handlers.NewSkillHandler(services.NewSkillService(stores.Skills)),
		Tools:        handlers.NewToolHandler(services.NewToolService(stores.Tools)),
		PersonalInfo: handlers.NewPersonalInfoHandler(services.NewPersonalInfoService(stores.PersonalInfo)),
		Upload: handlers.NewUploadHandler(
			services.NewMediaService(stores.Objects, cfg.Storage.Bucket, cfg.Storage.MaxUploadBytes),
		),
		Submissions: handlers.NewSubmissionHandler(
			services.NewSubmissionService(stores.Contacts, stores.Bookings, notificationService),
		),
		Notification: handlers.NewNotificationHandler(notificationService),
		System:       handlers.NewSystemHandler(stores.Health, cfg, authService.RevocationEnabled()),
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Storage.MaxUploadBytes
	router.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.RequestLogger(),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	routes.RegisterRoutes(router, h,
		middlewares.Authenticate(authService),
		middlewares.RequireAdmin(authService.Username()),
	)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			c.AllowCredentials = false
			return c
		}
	}
	c.AllowOrigins = origins
	if len(origins) == 0 {
		c.AllowOrigins = []string{"http://localhost:5173"}
	}
	return c
}

// App is a router backed by live infrastructure.
type App struct {
	Handler http.Handler
	closers []func()
}

// Close releases the database pool and the Redis client.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// NewHandler connects to the database and the optional Redis and object
// store, then builds the router. Both the listener and the serverless entry
// use it.
func NewHandler(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := applog.WithComponent("server")
	app := &App{}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, pool.Close)

	if cfg.MigrateOnStart {
		if err := database.RunMigrations(ctx, pool); err != nil {
			app.Close()
			return nil, err
		}
	}

	health := repositories.NewHealthRepository(pool)
	if _, err := health.Check(ctx); err != nil {
		app.Close()
		return nil, err
	}

	stores := Stores{
		Projects:     repositories.NewProjectRepository(pool),
		WebProjects:  repositories.NewWebProjectRepository(pool),
		Skills:       repositories.NewSkillRepository(pool),
		Tools:        repositories.NewToolRepository(pool),
		PersonalInfo: repositories.NewPersonalInfoRepository(pool),
		Contacts:     repositories.NewContactSubmissionRepository(pool),
		Bookings:     repositories.NewProjectBookingRepository(pool),
		Health:       health,
		Mailer:       mailer.New(cfg.Mail),
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisRepo := repositories.NewRedisRepository(rdb)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisRepo.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warn("redis unreachable, token revocation disabled", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			_ = rdb.Close()
		} else {
			logger.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))
			stores.Denylist = redisRepo
			app.closers = append(app.closers, func() { _ = rdb.Close() })
		}
	}

	if cfg.Storage.Enabled() {
		objects, err := repositories.NewObjectStorageRepository(cfg.Storage)
		if err != nil {
			app.Close()
			return nil, err
		}
		stores.Objects = objects
	} else {
		logger.Warn("object storage not configured, uploads will fail")
	}

	router, err := NewRouter(cfg, stores)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Handler = router
	return app, nil
}

// NewServer returns the long-running HTTP listener for handler.
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
