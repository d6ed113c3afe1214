// Package app provides the shared entry point for the covidbot binary:
// wiring, webhook registration, and lifecycle management.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/johann95ko/covid19-telegram-bot/internal/config"
	"github.com/johann95ko/covid19-telegram-bot/internal/cron"
	"github.com/johann95ko/covid19-telegram-bot/internal/telegram"
	"github.com/johann95ko/covid19-telegram-bot/internal/tracing"
)

// RunParams configures the main application loop.
type RunParams struct {
	// ConfigPath is an explicit path to the YAML configuration file.
	// If empty, ResolveConfigPath is called automatically.
	ConfigPath string

	// Version, Commit, and Date are injected at build time via ldflags.
	Version string
	Commit  string
	Date    string
}

// Run loads configuration, registers the webhook with Telegram, starts
// the HTTP gateway, and blocks until a shutdown signal is received.
func Run(params RunParams) error {
	cfgPath := params.ConfigPath
	if cfgPath == "" {
		resolved, err := ResolveConfigPath()
		if err != nil {
			return err
		}
		cfgPath = resolved
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, params.Version)
	if err != nil {
		return err
	}

	deps, err := wire(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if err := deps.gateway.Start(); err != nil {
		return err
	}

	// Register the webhook once the gateway is accepting requests.
	if err := deps.client.SetWebhook(ctx, telegram.SetWebhookRequest{
		URL:            cfg.Telegram.WebhookURL,
		SecretToken:    cfg.Telegram.WebhookSecret,
		AllowedUpdates: []string{"message"},
	}); err != nil {
		stopCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = deps.gateway.Stop(stopCtx)
		return fmt.Errorf("registering webhook: %w", err)
	}
	logger.Info("webhook registered", "url", cfg.Telegram.WebhookURL)

	var scheduler *cron.Scheduler
	if cfg.Telegram.RefreshSchedule != "" {
		scheduler = cron.NewScheduler(logger)
		if err := scheduler.RegisterJob(&cron.WebhookRefreshJob{
			Client:       deps.client,
			URL:          cfg.Telegram.WebhookURL,
			Secret:       cfg.Telegram.WebhookSecret,
			Logger:       logger,
			ScheduleExpr: cfg.Telegram.RefreshSchedule,
		}); err != nil {
			return err
		}
		if err := scheduler.Start(); err != nil {
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	sig := <-sigCh
	logger.Info("shutdown signal received", "signal", sig.String())

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if scheduler != nil {
		_ = scheduler.Stop(stopCtx)
	}
	if err := deps.client.DeleteWebhook(stopCtx); err != nil {
		logger.Warn("failed to delete webhook on shutdown", "error", err)
	}
	if err := deps.gateway.Stop(stopCtx); err != nil {
		logger.Warn("gateway shutdown error", "error", err)
	}
	if err := shutdownTracing(stopCtx); err != nil {
		logger.Warn("trace flush error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ResolveConfigPath searches for a config file in standard locations.
// Search order: $XDG_CONFIG_HOME/covidbot/covidbot.yaml →
// ~/.config/covidbot/covidbot.yaml → ./covidbot.yaml
func ResolveConfigPath() (string, error) {
	var candidates []string

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		candidates = append(candidates, filepath.Join(xdg, "covidbot", "covidbot.yaml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "covidbot", "covidbot.yaml"))
	}

	candidates = append(candidates, "covidbot.yaml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no configuration file found (searched: %v)", candidates)
}

// DefaultConfigPath returns where `config init` writes its file.
func DefaultConfigPath() string {
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return filepath.Join(xdg, "covidbot", "covidbot.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "covidbot", "covidbot.yaml")
}
