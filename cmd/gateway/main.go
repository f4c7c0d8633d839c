package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gochat/internal/di"
)

func main() {
	app, cleanup, err := di.InitializeGateway()
	if err != nil {
		log.Fatalf("Failed to initialize gateway: %v", err)
	}
	defer cleanup()

	logger := app.Logger

	// every gateway instance needs its own copy of each event
	group := "api_gateway." + uuid.NewString()
	if err := app.Bridge.Register(app.Bus, group); err != nil {
		logger.Error("failed to subscribe to delivery events", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + app.Config.Server.GatewayPort,
		Handler:           app.HTTP.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("✅ gateway listening", "addr", srv.Addr, "group", group)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down gateway")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		// hijacked websocket connections are not tracked by http.Server
		app.Registry.Shutdown(shutdownCtx)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("gateway stopped with error", "error", err)
		return
	}
	logger.Info("gateway stopped")
}
