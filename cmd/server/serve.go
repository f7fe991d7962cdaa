package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"frotaweb/pkg/logger"
	"frotaweb/pkg/scheduler"
	"frotaweb/pkg/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and the background jobs",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides server.port)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.ValidateConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logger.InitLogger(logger.Options{
		Development: cfg.IsDevelopment(),
		Level:       cfg.App.LogLevel,
		Path:        cfg.App.LogFile,
		MaxSizeMB:   cfg.App.LogMaxSizeMB,
		MaxBackups:  cfg.App.LogMaxBackups,
		MaxAgeDays:  cfg.App.LogMaxAgeDays,
		Compress:    true,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	srv, err := server.NewHTTPServer(ctx, &server.Config{Config: cfg})
	if err != nil {
		return err
	}

	ts, err := scheduler.NewTaskScheduler(ctx, &scheduler.Config{
		Scheduler: cfg.Scheduler,
		Relay:     srv.HandlerService().GetRelay(),
		Pruners:   srv.Pruners(),
	})
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	srv.SetScheduler(ts)

	logger.Info("Starting frotaweb",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port))

	g.Go(srv.Start)
	g.Go(ts.Start)
	g.Go(func() error {
		<-ctx.Done()

		timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return errors.Join(
			srv.Shutdown(shutdownCtx),
			ts.Shutdown(shutdownCtx),
		)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server stopped")
	return nil
}
