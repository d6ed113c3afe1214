// Package gateway exposes the bot's HTTP surface: the Telegram webhook
// endpoint plus health and metrics.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/johann95ko/covid19-telegram-bot/internal/bot"
	"github.com/johann95ko/covid19-telegram-bot/internal/config"
)

// Gateway is the inbound HTTP server.
type Gateway struct {
	cfg     config.ServerConfig
	secret  string
	session *bot.Session
	metrics *Metrics
	logger  *slog.Logger
	server  *http.Server
}

// New wires a Gateway. secret is the Telegram webhook secret token;
// empty disables validation.
func New(cfg config.ServerConfig, secret string, session *bot.Session, metrics *Metrics, logger *slog.Logger) *Gateway {
	return &Gateway{
		cfg:     cfg,
		secret:  secret,
		session: session,
		metrics: metrics,
		logger:  logger,
	}
}

// Start begins serving in a background goroutine.
func (g *Gateway) Start() error {
	g.server = &http.Server{
		Addr:         g.cfg.Bind,
		Handler:      g.buildRouter(),
		ReadTimeout:  g.cfg.ReadTimeout,
		WriteTimeout: g.cfg.WriteTimeout,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", g.cfg.Bind)
	if err != nil {
		return errors.New("gateway: listen failed: " + err.Error())
	}

	go func() {
		g.logger.Info("gateway listening", "addr", g.cfg.Bind)
		if err := g.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.logger.Error("gateway serve error", "error", err)
		}
	}()

	return nil
}

// Stop shuts the server down gracefully within the configured timeout.
func (g *Gateway) Stop(ctx context.Context) error {
	if g.server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, g.cfg.ShutdownTimeout)
	defer cancel()

	g.logger.Info("gateway shutting down")
	return g.server.Shutdown(shutdownCtx)
}
