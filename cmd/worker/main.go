// Command worker sends the newsletter broadcasts queued when featured news is published.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"injai_channel/internal/config"
	"injai_channel/internal/jobs"
	applog "injai_channel/internal/log"
	"injai_channel/internal/mailer"
	"injai_channel/internal/queue"
	"injai_channel/internal/repository"
	"injai_channel/internal/service"
)

func main() {
	bootLog := applog.New(os.Getenv("APP_ENV"))

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	logger := applog.New(cfg.Environment).With().Str("component", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := config.ConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	redisClient, err := queue.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	newsletterService := service.NewNewsletterService(
		repository.NewNewsletterRepository(dbPool),
		repository.NewNewsRepository(dbPool),
		mailer.NewSMTPMailer(cfg.SMTP),
		cfg.SiteURL,
		logger,
	)
	processor := jobs.NewBroadcastProcessor(newsletterService, logger)
	consumer := queue.NewConsumer(redisClient, cfg.Redis.Stream, cfg.Redis.Group, cfg.Redis.Consumer, time.Minute, logger, processor)

	logger.Info().Str("stream", cfg.Redis.Stream).Str("group", cfg.Redis.Group).Msg("worker started")
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("consumer stopped")
	}
	logger.Info().Msg("worker exiting")
}
