package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatusKeyPrefix = "user_status:"
	onlineValue     = "online"
)

func StatusKey(userID int64) string {
	return StatusKeyPrefix + strconv.FormatInt(userID, 10)
}

// ParseStatusKey extracts the user id from a presence key. Other keys that
// happen to expire in the same database are rejected.
func ParseStatusKey(key string) (int64, bool) {
	raw, ok := strings.CutPrefix(key, StatusKeyPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PresenceRepository stores one TTL-bearing key per online user.
type PresenceRepository interface {
	SetOnline(ctx context.Context, userID int64, ttl time.Duration) error
	// Refresh extends the TTL and reports false when the key was already gone.
	Refresh(ctx context.Context, userID int64, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, userID int64) error
	IsOnline(ctx context.Context, userID int64) (bool, error)
	OnlineMany(ctx context.Context, userIDs []int64) (map[int64]bool, error)
	SubscribeExpired(ctx context.Context) (ExpirySubscription, error)
}

// ExpirySubscription yields the names of keys as Redis expires them.
type ExpirySubscription interface {
	Next(ctx context.Context) (string, error)
	Close() error
}

type presenceRepo struct {
	client  *redis.Client
	channel string
}

// NewPresenceRepository listens for expirations on channel, normally
// dbredis.ExpiredChannel of the client's database.
func NewPresenceRepository(client *redis.Client, channel string) PresenceRepository {
	return &presenceRepo{client: client, channel: channel}
}

func (r *presenceRepo) SetOnline(ctx context.Context, userID int64, ttl time.Duration) error {
	if err := r.client.Set(ctx, StatusKey(userID), onlineValue, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set presence for user %d: %w", userID, err)
	}
	return nil
}

func (r *presenceRepo) Refresh(ctx context.Context, userID int64, ttl time.Duration) (bool, error) {
	ok, err := r.client.Expire(ctx, StatusKey(userID), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to refresh presence for user %d: %w", userID, err)
	}
	return ok, nil
}

func (r *presenceRepo) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, StatusKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete presence for user %d: %w", userID, err)
	}
	return nil
}

func (r *presenceRepo) IsOnline(ctx context.Context, userID int64) (bool, error) {
	value, err := r.client.Get(ctx, StatusKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read presence for user %d: %w", userID, err)
	}
	return value == onlineValue, nil
}

func (r *presenceRepo) OnlineMany(ctx context.Context, userIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = StatusKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read presence for %d users: %w", len(userIDs), err)
	}
	for i, id := range userIDs {
		s, _ := values[i].(string)
		result[id] = s == onlineValue
	}
	return result, nil
}

func (r *presenceRepo) SubscribeExpired(ctx context.Context) (ExpirySubscription, error) {
	ps := r.client.Subscribe(ctx, r.channel)
	// wait for the subscription confirmation so no expiry is missed after return
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	return &expirySubscription{ps: ps}, nil
}

type expirySubscription struct {
	ps *redis.PubSub
}

func (s *expirySubscription) Next(ctx context.Context) (string, error) {
	msg, err := s.ps.ReceiveMessage(ctx)
	if err != nil {
		return "", err
	}
	return msg.Payload, nil
}

func (s *expirySubscription) Close() error {
	return s.ps.Close()
}
