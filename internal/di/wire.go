//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gochat/internal/gateway/client"
	"gochat/internal/gateway/connection"
	gwhandler "gochat/internal/gateway/handler"
	msghandler "gochat/internal/message/handler"
	msgrepo "gochat/internal/message/repository"
	msgsvc "gochat/internal/message/service"
	presencehandler "gochat/internal/presence/handler"
	presencerepo "gochat/internal/presence/repository"
	presencesvc "gochat/internal/presence/service"
)

var baseSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideBus,
	ProvidePublisher,
)

func InitializeMessageService() (*MessageApp, func(), error) {
	wire.Build(
		baseSet,
		ProvideMySQL,
		ProvideMongo,
		ProvideMongoDatabase,
		msgrepo.NewMessageRepository,
		msgrepo.NewReplicaRepository,
		msgsvc.NewMessageService,
		msghandler.NewMessageHandler,
		msghandler.NewEventConsumer,
		wire.Struct(new(MessageApp), "*"),
	)
	return &MessageApp{}, nil, nil
}

func InitializePresenceService() (*PresenceApp, func(), error) {
	wire.Build(
		baseSet,
		ProvidePostgres,
		ProvideRedis,
		ProvidePresenceRepository,
		presencerepo.NewMembershipRepository,
		ProvidePresenceService,
		presencesvc.NewExpiryListener,
		presencehandler.NewPresenceHandler,
		presencehandler.NewMembershipConsumer,
		wire.Struct(new(PresenceApp), "*"),
	)
	return &PresenceApp{}, nil, nil
}

func InitializeGateway() (*GatewayApp, func(), error) {
	wire.Build(
		baseSet,
		ProvideMessageClient,
		ProvidePresenceClient,
		ProvideTokenValidator,
		ProvideRegistry,
		ProvideCommands,
		ProvideHTTPServer,
		wire.Bind(new(gwhandler.Sender), new(*connection.Registry)),
		wire.Bind(new(gwhandler.StatusReader), new(*client.Presence)),
		gwhandler.NewBridge,
		wire.Struct(new(GatewayApp), "*"),
	)
	return &GatewayApp{}, nil, nil
}
