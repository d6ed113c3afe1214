package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"time"
)

// tokenPattern matches the Telegram bot token format: <digits>:<alphanum+dash>.
var tokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

// Validate checks the structural validity of a Config.
// Defaults must have been applied before calling.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Telegram.Token == "" {
		errs = append(errs, errors.New("config: telegram.token is required"))
	} else if !tokenPattern.MatchString(cfg.Telegram.Token) {
		errs = append(errs, errors.New("config: telegram.token format invalid (expected <bot_id>:<hash>)"))
	}

	if cfg.Telegram.WebhookURL == "" {
		errs = append(errs, errors.New("config: telegram.webhook_url is required"))
	} else if err := validateURL(cfg.Telegram.WebhookURL); err != nil {
		errs = append(errs, fmt.Errorf("config: telegram.webhook_url: %w", err))
	}

	if err := validateURL(cfg.Telegram.APIURL); err != nil {
		errs = append(errs, fmt.Errorf("config: telegram.api_url: %w", err))
	}
	if err := validateURL(cfg.Stats.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("config: stats.base_url: %w", err))
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.Server.Bind); err != nil {
		errs = append(errs, fmt.Errorf("config: server.bind: invalid address %q", cfg.Server.Bind))
	}

	if _, err := time.LoadLocation(cfg.Display.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("config: display.timezone: unknown zone %q", cfg.Display.Timezone))
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: log.level must be debug|info|warn|error, got %q", cfg.Log.Level))
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be a valid http/https URL, got %q", raw)
	}
	return nil
}
