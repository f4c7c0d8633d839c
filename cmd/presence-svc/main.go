package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "gochat/api/v1/presence"
	"gochat/internal/common"
	"gochat/internal/di"
	"gochat/internal/presence/handler"
)

func main() {
	app, cleanup, err := di.InitializePresenceService()
	if err != nil {
		log.Fatalf("Failed to initialize presence service: %v", err)
	}
	defer cleanup()

	logger := app.Logger
	logger.Info("starting presence service", "port", app.Config.Server.PresenceServicePort)

	if err := app.Consumer.Register(app.Bus); err != nil {
		logger.Error("failed to subscribe to chat events", "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			common.LoggingUnaryInterceptor(logger),
			common.ErrorUnaryInterceptor(logger),
		),
	)
	pb.RegisterPresenceServiceServer(grpcServer, app.Handler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+app.Config.Server.PresenceServicePort)
	if err != nil {
		logger.Error("failed to listen", "port", app.Config.Server.PresenceServicePort, "error", err)
		os.Exit(1)
	}

	metricsServer := &http.Server{
		Addr:              ":" + app.Config.Server.PresenceMetricsPort,
		Handler:           handler.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("✅ presence service listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("metrics listening", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// expiry events only arrive when notify-keyspace-events includes Ex
		return app.Expiry.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down presence service")
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("presence service stopped with error", "error", err)
		return
	}
	logger.Info("presence service stopped")
}
