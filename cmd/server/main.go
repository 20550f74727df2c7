package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/GriffinCanCode/playapi/internal/infrastructure/config"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "playapi",
		Short:         "REST API over the Google Play store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if configPath == "" {
				configPath = os.Getenv(config.FileEnv)
			}
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cfg, cmd.Flags()); err != nil {
				return err
			}

			srv, err := server.NewServer(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			defer srv.Close()

			return srv.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to a YAML or TOML config file")
	flags.String("host", "", "Listen host")
	flags.StringP("port", "p", "", "Listen port")
	flags.String("base-path", "", "Path prefix for API routes")
	flags.Bool("log-dev", false, "Development mode (colored logs, debug level)")

	return cmd
}

// applyFlags copies explicitly set flags over cfg. Flags left at their
// defaults never replace file or environment values.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	for name, dst := range map[string]*string{
		"host":      &cfg.Server.Host,
		"port":      &cfg.Server.Port,
		"base-path": &cfg.Server.BasePath,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if flags.Changed("log-dev") {
		dev, err := flags.GetBool("log-dev")
		if err != nil {
			return err
		}
		cfg.Logging.Development = dev
		if dev {
			cfg.Logging.Level = "debug"
		}
	}
	return nil
}
