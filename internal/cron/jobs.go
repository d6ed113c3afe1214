package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/johann95ko/covid19-telegram-bot/internal/telegram"
)

// WebhookAPI is the subset of the Telegram client the refresh job needs.
type WebhookAPI interface {
	GetWebhookInfo(ctx context.Context) (*telegram.WebhookInfo, error)
	SetWebhook(ctx context.Context, req telegram.SetWebhookRequest) error
}

// WebhookRefreshJob re-asserts the webhook registration with Telegram.
// Registrations can silently drop (certificate rotation, Telegram-side
// resets); this job detects drift and restores the configured URL.
type WebhookRefreshJob struct {
	Client       WebhookAPI
	URL          string
	Secret       string
	Logger       *slog.Logger
	ScheduleExpr string
}

// Compile-time interface check.
var _ Job = (*WebhookRefreshJob)(nil)

// Name implements Job.
func (j *WebhookRefreshJob) Name() string {
	return "webhook_refresh"
}

// Schedule implements Job.
func (j *WebhookRefreshJob) Schedule() string {
	if j.ScheduleExpr != "" {
		return j.ScheduleExpr
	}
	return "*/30 * * * *"
}

// Run checks the current registration and re-registers when it no
// longer points at the configured URL.
func (j *WebhookRefreshJob) Run(ctx context.Context) error {
	info, err := j.Client.GetWebhookInfo(ctx)
	if err != nil {
		return fmt.Errorf("checking webhook registration: %w", err)
	}

	if info.URL == j.URL {
		if info.LastErrorMessage != "" {
			j.Logger.Warn("webhook registered but reporting delivery errors",
				"last_error", info.LastErrorMessage,
				"pending", info.PendingUpdateCount,
			)
		}
		return nil
	}

	j.Logger.Warn("webhook registration drifted, re-registering",
		"registered", info.URL,
		"configured", j.URL,
	)
	return j.Client.SetWebhook(ctx, telegram.SetWebhookRequest{
		URL:            j.URL,
		SecretToken:    j.Secret,
		AllowedUpdates: []string{"message"},
	})
}
