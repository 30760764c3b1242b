package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ayush/idea-to-launch/backend/internal/api"
	"github.com/ayush/idea-to-launch/backend/internal/config"
	"github.com/ayush/idea-to-launch/backend/internal/llm"
	"github.com/ayush/idea-to-launch/backend/internal/logger"
	"github.com/ayush/idea-to-launch/backend/internal/metrics"
	"github.com/ayush/idea-to-launch/backend/internal/pipeline"
	"github.com/ayush/idea-to-launch/backend/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	ctx := context.Background()

	// ── Generation client ────────────────────────────────────
	client, err := llm.NewClient(ctx, llm.Options{
		APIKey:            cfg.OpenAIAPIKey,
		BaseURL:           cfg.OpenAIBaseURL,
		Model:             cfg.OpenAIModel,
		RequestsPerMinute: cfg.GenerationRPM,
	})
	if err != nil {
		log.WithError(err).Fatal("generation client")
	}
	var completer llm.Completer = client

	// ── Redis (optional completion cache) ────────────────────
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, completion cache disabled")
		} else {
			defer rdb.Close()
			completer = llm.NewCachedCompleter(client, rdb, cfg.GenerationCacheTTL, client.Model(), log)
			log.WithField("ttl", cfg.GenerationCacheTTL).Info("completion cache enabled")
		}
	}

	// ── Pipeline ─────────────────────────────────────────────
	prompts, err := pipeline.NewPromptBuilder(nil)
	if err != nil {
		log.WithError(err).Fatal("prompt templates")
	}
	m := metrics.New()
	gen := pipeline.New(completer, prompts, log, m)

	// ── Router ───────────────────────────────────────────────
	handler := api.NewHandler(gen, api.ServiceInfo{
		OpenAIConfigured:   cfg.OpenAIAPIKey != "",
		DatabaseConfigured: cfg.DatabaseURL != "",
		Environment:        cfg.Environment,
		Model:              client.Model(),
	}, log)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Verbose:        cfg.IsDevelopment(),
		Log:            log,
		Metrics:        m.Handler(),
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":        cfg.Port,
			"model":       client.Model(),
			"environment": cfg.Environment,
		}).Info("backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
