package main

import (
	"fmt"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"

	"github.com/johann95ko/covid19-telegram-bot/pkg/app"
)

// program adapts app.Run to the service manager's lifecycle.
type program struct {
	cfgPath string
	errCh   chan error
}

// Start implements service.Interface. The service manager expects Start
// to return promptly, so the blocking run loop moves to a goroutine.
func (p *program) Start(service.Service) error {
	p.errCh = make(chan error, 1)
	go func() {
		p.errCh <- app.Run(app.RunParams{
			ConfigPath: p.cfgPath,
			Version:    version,
			Commit:     commit,
			Date:       date,
		})
	}()
	return nil
}

// Stop implements service.Interface. app.Run exits on the termination
// signal the service manager delivers; nothing extra to tear down here.
func (p *program) Stop(service.Service) error {
	return nil
}

func serviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Run or manage covidbot as a system service",
	}

	var cfgPath string
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to configuration file")

	newService := func() (service.Service, *program, error) {
		prg := &program{cfgPath: cfgPath}
		svcConfig := &service.Config{
			Name:        "covidbot",
			DisplayName: "COVID-19 Telegram Bot",
			Description: "Webhook-driven Telegram bot serving COVID-19 statistics.",
			Arguments:   serviceArguments(cfgPath),
		}
		svc, err := service.New(prg, svcConfig)
		return svc, prg, err
	}

	for _, action := range []string{"install", "uninstall", "start", "stop"} {
		cmd.AddCommand(&cobra.Command{
			Use:   action,
			Short: fmt.Sprintf("%s the system service", action),
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, _, err := newService()
				if err != nil {
					return err
				}
				if err := service.Control(svc, cmd.Use); err != nil {
					return fmt.Errorf("service %s: %w", cmd.Use, err)
				}
				fmt.Printf("Service %s: done\n", cmd.Use)
				return nil
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run under the service manager (invoked by the service itself)",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			return svc.Run()
		},
	})

	return cmd
}

func serviceArguments(cfgPath string) []string {
	args := []string{"service", "run"}
	if cfgPath != "" {
		args = append(args, "--config", cfgPath)
	}
	return args
}
