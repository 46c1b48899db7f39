package main

import (
	"context"
	"log/slog"
	"os"

	"barberbook/cmd/bootstrap"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Fail safe: never expose debug output on a misconfigured deploy
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           barberbook
// @version         1.0
// @description     Booking and walk-in queue gateway for barber shops.

// @BasePath  /
// @schemes http https
// @in header
func startServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	reconciler *commands.QueueReconciler,
) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			reconciler.Wait()
			return nil
		},
	})
}

// restoreSession resumes a previous login from the persisted token before
// the server accepts traffic. Failure just means starting logged out.
func restoreSession(lc fx.Lifecycle, auth commands.AuthCommands, bookings commands.BookingCommands, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			restoreCtx, cancel := context.WithTimeout(ctx, cfg.API.Timeout)
			defer cancel()
			if !auth.Restore(restoreCtx) {
				return nil
			}
			logger.Info("session restored from stored token")

			if err := bookings.Sync(restoreCtx); err != nil {
				logger.Warn("booking history sync failed, starting with an empty history", "error", err)
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
}
