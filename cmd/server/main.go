package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerlounge/consultancy-api/internal/api"
	mongodb "github.com/careerlounge/consultancy-api/internal/infrastructure/db/mongo"
	redisdb "github.com/careerlounge/consultancy-api/internal/infrastructure/db/redis"
	"github.com/careerlounge/consultancy-api/internal/infrastructure/mail"
	"github.com/careerlounge/consultancy-api/internal/infrastructure/queue"
	"github.com/careerlounge/consultancy-api/internal/pkg/config"
	"github.com/careerlounge/consultancy-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("booking index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Mail + background notifications ---
	mailer := mail.NewResendMailer(mail.Config{
		APIKey:     cfg.Mail.ResendAPIKey,
		From:       cfg.Mail.From,
		AdminEmail: cfg.Mail.AdminEmail,
	}, log)

	notifier := queue.NewDispatcher(cfg.Mail.Workers, mailer, log)
	notifier.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(db, rdb, mailer, notifier, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
