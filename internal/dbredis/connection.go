// Package dbredis connects the presence service to Redis.
package dbredis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"gochat/internal/config"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
	}

	slog.Info("✅ Connected to Redis successfully", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return client, nil
}

// ExpiredChannel is the keyevent channel Redis publishes expirations on.
func ExpiredChannel(db int) string {
	return fmt.Sprintf("__keyevent@%d__:expired", db)
}

// EnableExpiryNotifications turns on keyevent notifications for expired keys.
func EnableExpiryNotifications(ctx context.Context, client *redis.Client) error {
	current, err := client.ConfigGet(ctx, "notify-keyspace-events").Result()
	if err != nil {
		return fmt.Errorf("failed to read notify-keyspace-events: %w", err)
	}
	flags := current["notify-keyspace-events"]
	if hasFlags(flags, 'E', 'x') || hasFlags(flags, 'E', 'A') {
		return nil
	}
	if err := client.ConfigSet(ctx, "notify-keyspace-events", flags+"Ex").Err(); err != nil {
		return fmt.Errorf("failed to enable expiry notifications: %w", err)
	}
	return nil
}

func hasFlags(flags string, want ...rune) bool {
	for _, w := range want {
		found := false
		for _, f := range flags {
			if f == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
