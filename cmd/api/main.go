package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/pharmacie-tassigny/site/backend/internal/agent"
	"github.com/pharmacie-tassigny/site/backend/internal/chat"
	"github.com/pharmacie-tassigny/site/backend/internal/config"
	"github.com/pharmacie-tassigny/site/backend/internal/content"
	"github.com/pharmacie-tassigny/site/backend/internal/handler"
	"github.com/pharmacie-tassigny/site/backend/internal/ratelimit"
	"github.com/redis/go-redis/v9"
)

func main() {
	/**********************************************
	 * Logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * Content
	 **********************************************/
	loader, err := content.NewLoader(cfg.Site.ContentDir, cfg.Site.Locale)
	if err != nil {
		logger.Error("failed to create content loader", "error", err)
		os.Exit(1)
	}

	// broken content must stop the deployment, not surface page by page
	if err := loader.CheckAll(); err != nil {
		logger.Error("content check failed", "dir", cfg.Site.ContentDir, "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * Conversational agent
	 **********************************************/
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newAgent(ctx, cfg)
	if err != nil {
		logger.Error("failed to create chat agent", "provider", cfg.Chat.Provider, "error", err)
		os.Exit(1)
	}
	relay := chat.NewRelay(a, cfg.Chat.FallbackReply, cfg.Chat.MaxTurns)

	/**********************************************
	 * Rate limiter
	 **********************************************/
	var limiter ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		err := rdb.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}

		limiter = ratelimit.NewRedis(rdb, cfg.Chat.RateLimit.PerMinute)
		logger.Info("chat rate limit shared through redis", "addr", cfg.Redis.Addr, "per_minute", cfg.Chat.RateLimit.PerMinute)
	} else {
		limiter = ratelimit.NewMemory(cfg.Chat.RateLimit.PerMinute, cfg.Chat.RateLimit.Burst)
		logger.Info("chat rate limit kept in memory", "per_minute", cfg.Chat.RateLimit.PerMinute, "burst", cfg.Chat.RateLimit.Burst)
	}

	/**********************************************
	 * Handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, loader, relay, limiter)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		os.Exit(1)
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Server.Port, "content_dir", cfg.Site.ContentDir, "chat_provider", cfg.Chat.Provider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

func newAgent(ctx context.Context, cfg *config.Config) (agent.Agent, error) {
	switch cfg.Chat.Provider {
	case "mistral":
		return agent.NewMistral(cfg.Chat.APIKey, cfg.Chat.AgentID, cfg.Chat.BaseURL, time.Duration(cfg.Chat.Timeout)*time.Second)
	case "gemini":
		return agent.NewGemini(ctx, cfg.Chat.APIKey, cfg.Chat.Model, cfg.Chat.SystemPrompt, cfg.Chat.GeminiBaseURL)
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Chat.Provider)
	}
}
