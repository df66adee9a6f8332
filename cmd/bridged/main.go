package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kbridge/internal/config"
	"kbridge/internal/engine"
	"kbridge/internal/logging"
)

func main() {
	var (
		cfgFile     string
		envDir      string
		printConfig bool
	)

	root := &cobra.Command{
		Use:           "bridged",
		Short:         "Kafka host bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envDir); err != nil {
				return err
			}
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if printConfig {
				return config.DumpTo(cfg, "")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e, err := engine.Bootstrap(ctx, cfg)
			if err != nil {
				return err
			}
			return e.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgFile, "config", "kbridge.yml", "path to config file")
	root.Flags().StringVar(&envDir, "env-dir", ".", "directory holding .env and .local.env")
	root.Flags().BoolVar(&printConfig, "print-config", false, "print the effective config and exit")

	if err := root.ExecuteContext(context.Background()); err != nil {
		logging.L().Error("bridged", "err", err)
		os.Exit(1)
	}
}
