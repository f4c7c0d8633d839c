package service

import (
	"context"
	"log/slog"
	"time"

	"gochat/internal/presence/repository"
)

const (
	minResubscribeBackoff = 500 * time.Millisecond
	maxResubscribeBackoff = 10 * time.Second
	expiryHandleTimeout   = 5 * time.Second
)

// ExpiryListener turns presence keys expiring in Redis into offline
// transitions. This is how a gateway that died without disconnecting its
// users gets them marked offline.
type ExpiryListener struct {
	store      repository.PresenceRepository
	presence   PresenceService
	logger     *slog.Logger
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewExpiryListener(store repository.PresenceRepository, presence PresenceService, logger *slog.Logger) *ExpiryListener {
	return &ExpiryListener{
		store:      store,
		presence:   presence,
		logger:     logger.With("component", "expiry_listener"),
		minBackoff: minResubscribeBackoff,
		maxBackoff: maxResubscribeBackoff,
	}
}

// Run blocks until ctx is cancelled. Subscription failures are retried with
// exponential backoff.
func (l *ExpiryListener) Run(ctx context.Context) error {
	backoff := l.minBackoff
	for {
		if ctx.Err() != nil {
			return nil
		}

		sub, err := l.store.SubscribeExpired(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.logger.WarnContext(ctx, "failed to subscribe to expirations", "error", err, "retry_in", backoff)
			if !sleep(ctx, backoff) {
				return nil
			}
			backoff = min(backoff*2, l.maxBackoff)
			continue
		}

		l.logger.InfoContext(ctx, "listening for presence expirations")
		backoff = l.minBackoff
		err = l.consume(ctx, sub)
		_ = sub.Close()
		if ctx.Err() != nil {
			return nil
		}
		l.logger.WarnContext(ctx, "expiry subscription lost", "error", err, "retry_in", backoff)
		if !sleep(ctx, backoff) {
			return nil
		}
	}
}

// consume reads until the subscription fails. Redis pubsub reads ignore
// ctx, so cancellation closes the subscription to unblock Next.
func (l *ExpiryListener) consume(ctx context.Context, sub repository.ExpirySubscription) error {
	stop := context.AfterFunc(ctx, func() { _ = sub.Close() })
	defer stop()

	for {
		key, err := sub.Next(ctx)
		if err != nil {
			return err
		}
		l.handle(ctx, key)
	}
}

func (l *ExpiryListener) handle(ctx context.Context, key string) {
	userID, ok := repository.ParseStatusKey(key)
	if !ok {
		return
	}
	expiriesTotal.Inc()

	// finish the notification even if shutdown starts mid-way
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), expiryHandleTimeout)
	defer cancel()

	// the user may have reconnected between expiry and delivery
	online, err := l.store.IsOnline(opCtx, userID)
	if err == nil && online {
		l.logger.DebugContext(ctx, "expired user already back online", "user_id", userID)
		return
	}

	l.logger.InfoContext(ctx, "presence expired", "user_id", userID)
	if err := l.presence.SetOffline(opCtx, userID); err != nil {
		l.logger.ErrorContext(ctx, "failed to mark expired user offline", "user_id", userID, "error", err)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
