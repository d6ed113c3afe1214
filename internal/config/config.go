// Package config handles YAML configuration loading, environment variable
// expansion, and validation for covidbot.
package config

import "time"

// Config is the top-level configuration structure.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Stats    StatsConfig    `yaml:"stats"`
	Server   ServerConfig   `yaml:"server"`
	Display  DisplayConfig  `yaml:"display"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Log      LogConfig      `yaml:"log"`
}

// TelegramConfig holds Bot API credentials and webhook settings.
type TelegramConfig struct {
	Token         string        `yaml:"token"`
	APIURL        string        `yaml:"api_url"`
	WebhookURL    string        `yaml:"webhook_url"`
	WebhookSecret string        `yaml:"webhook_secret"`
	Timeout       time.Duration `yaml:"timeout"`

	// RefreshSchedule is a cron expression for periodically re-asserting
	// the webhook registration with Telegram. Empty disables the job.
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// StatsConfig holds the upstream statistics API settings.
type StatsConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig holds the inbound HTTP server settings.
type ServerConfig struct {
	Bind            string        `yaml:"bind"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DisplayConfig controls how fetched data is rendered.
type DisplayConfig struct {
	// Timezone is the IANA zone name used for "last updated" timestamps.
	Timezone string `yaml:"timezone"`
}

// TracingConfig enables OTLP trace export when Endpoint is set.
type TracingConfig struct {
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Defaults fills zero values with sensible defaults.
func (c *Config) Defaults() {
	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = "https://api.telegram.org"
	}
	if c.Telegram.Timeout <= 0 {
		c.Telegram.Timeout = 30 * time.Second
	}
	if c.Stats.BaseURL == "" {
		c.Stats.BaseURL = "https://disease.sh/v3/covid-19"
	}
	if c.Stats.Timeout <= 0 {
		c.Stats.Timeout = 15 * time.Second
	}
	if c.Server.Bind == "" {
		c.Server.Bind = "127.0.0.1:8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = "Asia/Singapore"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
