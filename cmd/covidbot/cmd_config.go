package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/johann95ko/covid19-telegram-bot/internal/config"
	"github.com/johann95ko/covid19-telegram-bot/pkg/app"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(configCheckCmd(), configInitCmd())
	return cmd
}

func configCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			fmt.Println("Configuration OK")
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			force, _ := cmd.Flags().GetBool("force")
			if output == "" {
				output = app.DefaultConfigPath()
			}

			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				}
			}

			var (
				token      string
				webhookURL string
				secret     string
				timezone   = "Asia/Singapore"
			)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Bot token").
						Description("From @BotFather, looks like 123456:ABC-DEF...").
						EchoMode(huh.EchoModePassword).
						Value(&token),
					huh.NewInput().
						Title("Public webhook URL").
						Description("HTTPS URL Telegram will deliver updates to").
						Value(&webhookURL),
					huh.NewInput().
						Title("Webhook secret token (optional)").
						Value(&secret),
					huh.NewInput().
						Title("Display timezone").
						Value(&timezone),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}

			rendered := renderConfig(token, webhookURL, secret, timezone)

			// Reject bad input before writing anything.
			cfg := &config.Config{}
			cfg.Telegram.Token = token
			cfg.Telegram.WebhookURL = webhookURL
			cfg.Telegram.WebhookSecret = secret
			cfg.Display.Timezone = timezone
			cfg.Defaults()
			if err := config.Validate(cfg); err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o700); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(output, []byte(rendered), 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			fmt.Printf("Configuration written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Where to write the configuration file")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func renderConfig(token, webhookURL, secret, timezone string) string {
	out := fmt.Sprintf(`# covidbot configuration, generated %s
telegram:
  token: %q
  webhook_url: %q
`, time.Now().Format("2006-01-02"), token, webhookURL)
	if secret != "" {
		out += fmt.Sprintf("  webhook_secret: %q\n", secret)
	}
	out += fmt.Sprintf(`
display:
  timezone: %q

server:
  bind: "127.0.0.1:8080"

log:
  level: "info"
`, timezone)
	return out
}
