package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/bruins-live-service/internal/config"
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/server"
)

const serviceName = "bruins-live-service"

// Swapped in tests.
var (
	loadConfig      = config.Load
	runServer       = startServer
	pollOnce        = server.PollOnce
	setPublicConfig = server.SetPublicConfig
)

func startServer(ctx context.Context, stop context.CancelFunc, cfg config.Config, logger *slog.Logger) error {
	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx, stop)
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
}

func newRootCommand(stop context.CancelFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "bruins-live",
		Short:         "Poll the NHL feed and publish today's Bruins game documents",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, stop)
		},
	}
	root.AddCommand(newServeCommand(stop), newPollCommand(), newConfigCommand())
	return root
}

func newServeCommand(stop context.CancelFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, metrics and scheduled poll loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, stop)
		},
	}
}

func serve(cmd *cobra.Command, stop context.CancelFunc) error {
	cfg := loadConfig()
	return runServer(cmd.Context(), stop, cfg, newLogger(cfg))
}

func newPollCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Run a single poll cycle and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			result, err := pollOnce(cmd.Context(), cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the public config document",
	}

	var next domain.PublicConfig
	set := &cobra.Command{
		Use:   "set",
		Short: "Write the default channel and timezone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			return setPublicConfig(cmd.Context(), cfg, next, newLogger(cfg))
		},
	}
	set.Flags().StringVar(&next.DefaultChannel, "default-channel", "", "channel shown when no override is set")
	set.Flags().StringVar(&next.Timezone, "timezone", domain.DefaultTimezone, "IANA timezone used to compute the date key")
	_ = set.MarkFlagRequired("default-channel")

	cmd.AddCommand(set)
	return cmd
}
