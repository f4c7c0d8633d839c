package main

import (
	"context"
	"errors"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "gochat/api/v1/message"
	"gochat/internal/common"
	"gochat/internal/di"
)

func main() {
	app, cleanup, err := di.InitializeMessageService()
	if err != nil {
		log.Fatalf("Failed to initialize message service: %v", err)
	}
	defer cleanup()

	logger := app.Logger
	logger.Info("starting message service", "port", app.Config.Server.MessageServicePort)

	if err := app.Consumer.Register(app.Bus); err != nil {
		logger.Error("failed to subscribe to replica events", "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			common.LoggingUnaryInterceptor(logger),
			common.ErrorUnaryInterceptor(logger),
		),
	)
	pb.RegisterMessageServiceServer(grpcServer, app.Handler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+app.Config.Server.MessageServicePort)
	if err != nil {
		logger.Error("failed to listen", "port", app.Config.Server.MessageServicePort, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("✅ message service listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down message service")
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("message service stopped with error", "error", err)
		return
	}
	logger.Info("message service stopped")
}
