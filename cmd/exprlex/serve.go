package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ExprLex/internal/config"
	"ExprLex/internal/logging"
	"ExprLex/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the analysis HTTP API",
		Args:  cobra.NoArgs,
	}

	port := cmd.Flags().String("port", "", "port to listen on (overrides EXPRLEX_PORT)")
	logLevel := cmd.Flags().String("log-level", "", "log level (overrides EXPRLEX_LOG_LEVEL)")
	cacheSize := cmd.Flags().Int("cache-size", 0, "number of memoized inputs (overrides EXPRLEX_CACHE_SIZE)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		if *port != "" {
			cfg.Port = *port
		}
		if *logLevel != "" {
			cfg.LogLevel = *logLevel
		}
		if cmd.Flags().Changed("cache-size") {
			cfg.CacheSize = *cacheSize
		}

		logger := logging.New(cfg.LogLevel)
		defer logging.Sync(logger)

		logger.Info("starting exprlex",
			zap.String("version", Version),
			zap.String("port", cfg.Port),
			zap.Int("cache_size", cfg.CacheSize),
		)

		srv, err := server.New(cfg, Version, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, srv, logger)
	}
	return cmd
}
