package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/loudsignal/hambot/internal/adapter/hamqsl"
	httpadapter "github.com/loudsignal/hambot/internal/adapter/http"
	"github.com/loudsignal/hambot/internal/adapter/pota"
	"github.com/loudsignal/hambot/internal/adapter/seabird"
	"github.com/loudsignal/hambot/internal/bot"
	"github.com/loudsignal/hambot/internal/config"
	"github.com/loudsignal/hambot/internal/observability"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	chat, err := seabird.NewClient(cfg, metrics, logger)
	if err != nil {
		logger.Error("failed to connect to seabird", "error", err)
		os.Exit(1)
	}

	conditions := hamqsl.NewClient(cfg.SolarURL, cfg.FetchTimeout, metrics, logger)
	activations := pota.NewClient(cfg.SpotsURL, cfg.FetchTimeout, metrics, logger)

	router := bot.New(chat, chat, conditions, activations, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, router, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the event stream. A stream failure closes the event channel,
	// which ends the router below and takes the process down with it.
	go func() {
		if err := chat.Stream(ctx, bot.Commands()); err != nil && ctx.Err() == nil {
			logger.Error("event stream error", "error", err)
		}
	}()

	if err := router.Run(ctx); err != nil {
		logger.Error("command router error", "error", err)
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := chat.Close(); err != nil {
		logger.Error("seabird close error", "error", err)
	}

	logger.Info("shutdown complete")
}
