package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/johann95ko/covid19-telegram-bot/internal/bot"
	"github.com/johann95ko/covid19-telegram-bot/internal/config"
	"github.com/johann95ko/covid19-telegram-bot/internal/gateway"
	"github.com/johann95ko/covid19-telegram-bot/internal/reply"
	"github.com/johann95ko/covid19-telegram-bot/internal/stats"
	"github.com/johann95ko/covid19-telegram-bot/internal/telegram"
)

// deps holds the wired application graph.
type deps struct {
	client  *telegram.Client
	gateway *gateway.Gateway
}

// wire builds the full dependency graph and validates the bot token
// against the live API.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*deps, error) {
	client := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.APIURL, cfg.Telegram.Timeout)

	me, err := client.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("validating bot token: %w", err)
	}
	logger.Info("bot authenticated", "id", me.ID, "username", me.Username)

	loc, err := time.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading display timezone: %w", err)
	}

	fetcher := stats.NewClient(cfg.Stats.BaseURL, cfg.Stats.Timeout)
	composer := reply.NewComposer(loc, nil)
	session := bot.NewSession(fetcher, client, composer, logger)

	metrics := gateway.NewMetrics()
	gw := gateway.New(cfg.Server, cfg.Telegram.WebhookSecret, session, metrics, logger)

	return &deps{
		client:  client,
		gateway: gw,
	}, nil
}
