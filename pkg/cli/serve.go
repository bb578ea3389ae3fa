package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/cli/config"
	controller "github.com/secmon-lab/roster/pkg/controller/http"
	"github.com/secmon-lab/roster/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		backendCfg   config.Backend
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		messagesCfg  config.Messages
	)

	flags := joinFlags(
		serverCfg.Flags(),
		backendCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		messagesCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting roster server",
				slog.Any("server", serverCfg),
				slog.Any("backend", backendCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.Any("messages", messagesCfg),
			)

			backendClient, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			messages, err := messagesCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Warn("Failed to close repository", slog.Any("error", err))
				}
			}()

			notificationUC := usecase.NewNotifications(repo)

			var formOpts []usecase.EmployeeFormOption
			if slackClient := slackCfg.ConfigureOptional(logger); slackClient != nil {
				formOpts = append(formOpts, usecase.WithSlackAnnounce(slackClient, slackCfg.ChannelID))
			}
			formUC := usecase.NewEmployeeForm(backendClient, notificationUC, messages, formOpts...)

			server, err := controller.NewServer(ctx,
				controller.NewConfig(serverCfg.Addr, messages, serverCfg.SecureCookie),
				controller.NewUseCases(formUC, notificationUC),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
