package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"injai_channel/internal/config"
	"injai_channel/internal/handler"
	"injai_channel/internal/jobs"
	applog "injai_channel/internal/log"
	"injai_channel/internal/mailer"
	"injai_channel/internal/middleware"
	"injai_channel/internal/queue"
	"injai_channel/internal/repository"
	"injai_channel/internal/service"
	"injai_channel/internal/storage"
	"injai_channel/internal/utils"
	"injai_channel/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	bootLog := applog.New(os.Getenv("APP_ENV"))

	// --- Configuration ---
	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	logger := applog.New(cfg.Environment)

	ctx := context.Background()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := config.Migrate(ctx, dbPool, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// --- Optional infrastructure ---
	// Without redis, featured news is not broadcast automatically.
	var redisClient *redis.Client
	var broadcastQueue service.BroadcastQueue
	if cfg.Redis.Addr != "" {
		redisClient, err = queue.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, newsletter broadcasts will not be queued")
		} else {
			defer redisClient.Close()
			broadcastQueue = queue.NewProducer(redisClient, cfg.Redis.Stream)
		}
	}

	var objectStore *storage.ObjectStore
	var uploads service.ObjectStorage
	if cfg.Storage.Endpoint != "" {
		objectStore, err = storage.NewObjectStore(cfg.Storage)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init object store")
		}
		if err := objectStore.EnsureBucket(ctx); err != nil {
			logger.Warn().Err(err).Msg("ensure bucket failed")
		}
		uploads = objectStore
	} else {
		logger.Warn().Msg("S3_ENDPOINT not set, image uploads are disabled")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)
	mail := mailer.NewSMTPMailer(cfg.SMTP)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	artistRepo := repository.NewArtistRepository(dbPool)
	videoRepo := repository.NewVideoRepository(dbPool)
	eventRepo := repository.NewEventRepository(dbPool)
	newsRepo := repository.NewNewsRepository(dbPool)
	newsletterRepo := repository.NewNewsletterRepository(dbPool)
	settingsRepo := repository.NewSettingsRepository(dbPool)
	dashboardRepo := repository.NewDashboardRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, service.AuthOptions{
		SignupRole:    cfg.SignupRole,
		SignupEnabled: cfg.SignupEnabled,
	}, logger)
	userService := service.NewUserService(userRepo)
	artistService := service.NewArtistService(artistRepo)
	videoService := service.NewVideoService(videoRepo, service.NewYouTubeOEmbed(""))
	eventService := service.NewEventService(eventRepo)
	newsService := service.NewNewsService(newsRepo, broadcastQueue, logger)
	newsletterService := service.NewNewsletterService(newsletterRepo, newsRepo, mail, cfg.SiteURL, logger)
	settingsService := service.NewSettingsService(settingsRepo)
	contactService := service.NewContactService(mail, cfg.SMTP.ContactRecipient())
	previewService := service.NewPreviewService(newsRepo, artistRepo, videoRepo, eventRepo)
	uploadService := service.NewUploadService(uploads)

	// --- Setup Gin Router ---
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Chain(logger, cfg.CORSOrigins)...)

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse page templates")
	}
	router.SetHTMLTemplate(templates)

	// --- Initialize Middlewares ---
	gate := middleware.NewGate(jwtUtil)
	apiGateMW := middleware.APIGate(gate)
	pageGateMW := middleware.PageGate(gate)

	// --- Register Routes ---
	cookie := handler.CookieOptions{MaxAge: int(jwtUtil.TTL().Seconds()), Secure: !cfg.IsDevelopment()}
	apiGroup := router.Group("/api")
	handler.NewAuthHandler(authService, cookie, logger).RegisterAuthRoutes(apiGroup, apiGateMW)
	handler.NewUserHandler(userService, logger).RegisterUserRoutes(apiGroup, apiGateMW)
	handler.NewArtistHandler(artistService, logger).RegisterArtistRoutes(apiGroup, apiGateMW)
	handler.NewVideoHandler(videoService, logger).RegisterVideoRoutes(apiGroup, apiGateMW)
	handler.NewEventHandler(eventService, logger).RegisterEventRoutes(apiGroup, apiGateMW)
	handler.NewNewsHandler(newsService, logger).RegisterNewsRoutes(apiGroup, apiGateMW)
	handler.NewSettingsHandler(settingsService, logger).RegisterSettingsRoutes(apiGroup, apiGateMW)
	handler.NewNewsletterHandler(newsletterService, logger).RegisterNewsletterRoutes(apiGroup, apiGateMW)
	handler.NewContactHandler(contactService, logger).RegisterContactRoutes(apiGroup)
	handler.NewPreviewHandler(previewService, logger).RegisterPreviewRoutes(apiGroup)
	handler.NewUploadHandler(uploadService, logger).RegisterUploadRoutes(apiGroup, apiGateMW)
	handler.NewPageHandler(dashboardRepo, gate, logger).RegisterPageRoutes(router, pageGateMW)

	checks := map[string]handler.HealthCheck{"database": dbPool.Ping}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	if objectStore != nil {
		checks["storage"] = objectStore.Ping
	}
	handler.NewHealthHandler(checks, logger).RegisterHealthRoutes(router)

	// --- Scheduled jobs ---
	scheduler := jobs.NewScheduler(eventService, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exiting")
}
