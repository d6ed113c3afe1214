package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Telegram.Token = "123456:ABC-def_123"
	cfg.Telegram.WebhookURL = "https://bot.example.com/webhook"
	cfg.Defaults()
	return cfg
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing token", func(c *Config) { c.Telegram.Token = "" }, "token is required"},
		{"malformed token", func(c *Config) { c.Telegram.Token = "not-a-token" }, "token format"},
		{"missing webhook url", func(c *Config) { c.Telegram.WebhookURL = "" }, "webhook_url is required"},
		{"bad webhook url", func(c *Config) { c.Telegram.WebhookURL = "ftp://x" }, "webhook_url"},
		{"bad bind", func(c *Config) { c.Server.Bind = "not an address" }, "server.bind"},
		{"bad timezone", func(c *Config) { c.Display.Timezone = "Mars/Olympus" }, "timezone"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
