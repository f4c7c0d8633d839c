package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	msgpb "gochat/api/v1/message"
	presencepb "gochat/api/v1/presence"
	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/dbmongo"
	"gochat/internal/dbmysql"
	"gochat/internal/dbpostgres"
	"gochat/internal/dbredis"
	"gochat/internal/eventbus"
	"gochat/internal/events"
	"gochat/internal/gateway/client"
	"gochat/internal/gateway/connection"
	gwhandler "gochat/internal/gateway/handler"
	presencerepo "gochat/internal/presence/repository"
	presencesvc "gochat/internal/presence/service"
)

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	return common.NewLogger(cfg.Logging)
}

func ProvideMySQL(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mc.EnsureIndexes(ctx); err != nil {
		_ = mc.Close(ctx)
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mc.Close(ctx)
	}
	return mc, cleanup, nil
}

func ProvideMongoDatabase(mc *dbmongo.MongoClient) *mongo.Database {
	return mc.Database
}

func ProvidePostgres(cfg *config.Config) (presencerepo.DB, func(), error) {
	pool, err := dbpostgres.NewPostgresPool(cfg)
	if err != nil {
		return nil, nil, err
	}
	return pool, pool.Close, nil
}

var _ presencerepo.DB = (*pgxpool.Pool)(nil)

// ProvideRedis connects to Redis and, when configured, turns on the expiry
// notifications the presence service depends on.
func ProvideRedis(cfg *config.Config, logger *slog.Logger) (*redis.Client, func(), error) {
	rdb, err := dbredis.NewRedisClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Redis.ConfigureNotifications {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbredis.EnableExpiryNotifications(ctx, rdb); err != nil {
			logger.Warn("could not enable expiry notifications, crashed clients will only go offline on reconnect", "error", err)
		}
	}
	return rdb, func() { _ = rdb.Close() }, nil
}

func ProvidePresenceRepository(cfg *config.Config, rdb *redis.Client) presencerepo.PresenceRepository {
	return presencerepo.NewPresenceRepository(rdb, dbredis.ExpiredChannel(cfg.Redis.DB))
}

func ProvidePresenceService(
	cfg *config.Config,
	store presencerepo.PresenceRepository,
	members presencerepo.MembershipRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) presencesvc.PresenceService {
	return presencesvc.NewPresenceService(store, members, publisher, cfg.Presence.DefaultTTL, logger)
}

func ProvideBus(cfg *config.Config, logger *slog.Logger) (eventbus.Bus, func(), error) {
	bus, err := eventbus.NewNATSBus(cfg.NATS, logger.With("component", "eventbus"))
	if err != nil {
		return nil, nil, err
	}
	return bus, func() { _ = bus.Close() }, nil
}

func ProvidePublisher(bus eventbus.Bus) events.Publisher {
	return bus
}

func ProvideMessageClient(cfg *config.Config) (msgpb.MessageServiceClient, func(), error) {
	conn, err := client.Dial(cfg.Server.MessageServiceAddr)
	if err != nil {
		return nil, nil, err
	}
	return client.NewMessageClient(conn), func() { _ = conn.Close() }, nil
}

func ProvidePresenceClient(cfg *config.Config) (*client.Presence, func(), error) {
	conn, err := client.Dial(cfg.Server.PresenceServiceAddr)
	if err != nil {
		return nil, nil, err
	}
	return client.NewPresence(presencepb.NewPresenceServiceClient(conn), cfg.Gateway.RPCTimeout), func() { _ = conn.Close() }, nil
}

func ProvideTokenValidator(cfg *config.Config) *common.TokenValidator {
	return common.NewTokenValidator(cfg.Auth.JWTSecret)
}

func ProvideRegistry(cfg *config.Config, presence *client.Presence, logger *slog.Logger) *connection.Registry {
	return connection.NewRegistry(presence, cfg.Presence.DefaultTTL, logger)
}

func ProvideCommands(cfg *config.Config, messages msgpb.MessageServiceClient, publisher events.Publisher, logger *slog.Logger) *gwhandler.Commands {
	return gwhandler.NewCommands(messages, publisher, cfg.Gateway.RPCTimeout, logger)
}

func ProvideHTTPServer(
	cfg *config.Config,
	registry *connection.Registry,
	commands *gwhandler.Commands,
	messages msgpb.MessageServiceClient,
	presence *client.Presence,
	validator *common.TokenValidator,
	logger *slog.Logger,
) *gwhandler.HTTPServer {
	return gwhandler.NewHTTPServer(registry, commands, messages, presence, validator, cfg.Gateway, logger)
}
