package service

import (
	"context"
	"log/slog"
	"time"

	"gochat/internal/common"
	"gochat/internal/events"
	"gochat/internal/presence/repository"
)

// PresenceService tracks who is online and tells the people who share a
// chat with them when that changes.
type PresenceService interface {
	SetOnline(ctx context.Context, userID int64, ttl time.Duration) error
	RefreshOnline(ctx context.Context, userID int64, ttl time.Duration) error
	SetOffline(ctx context.Context, userID int64) error
	GetStatus(ctx context.Context, userID int64) (common.PresenceStatus, error)
	GetStatuses(ctx context.Context, userIDs []int64) (map[int64]common.PresenceStatus, error)
}

type presenceService struct {
	store      repository.PresenceRepository
	members    repository.MembershipRepository
	publisher  events.Publisher
	defaultTTL time.Duration
	logger     *slog.Logger
}

func NewPresenceService(
	store repository.PresenceRepository,
	members repository.MembershipRepository,
	publisher events.Publisher,
	defaultTTL time.Duration,
	logger *slog.Logger,
) PresenceService {
	if defaultTTL <= 0 {
		defaultTTL = 60 * time.Second
	}
	return &presenceService{
		store:      store,
		members:    members,
		publisher:  publisher,
		defaultTTL: defaultTTL,
		logger:     logger.With("component", "presence_service"),
	}
}

func validateUserID(userID int64) error {
	if userID <= 0 {
		return common.Validation("user_id must be positive, got %d", userID)
	}
	return nil
}

// SetOnline writes the presence key. A store failure is logged and
// swallowed: the user simply stays invisible until the next refresh.
func (s *presenceService) SetOnline(ctx context.Context, userID int64, ttl time.Duration) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	if err := s.store.SetOnline(ctx, userID, ttl); err != nil {
		s.logger.WarnContext(ctx, "presence store unavailable, skipping online",
			"user_id", userID, "error", err)
		return nil
	}
	s.notify(ctx, userID, common.StatusOnline)
	return nil
}

func (s *presenceService) RefreshOnline(ctx context.Context, userID int64, ttl time.Duration) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	refreshed, err := s.store.Refresh(ctx, userID, ttl)
	if err != nil {
		s.logger.WarnContext(ctx, "presence store unavailable, skipping refresh",
			"user_id", userID, "error", err)
		return nil
	}
	if refreshed {
		refreshesTotal.Inc()
		return nil
	}
	// the key expired between heartbeats
	return s.SetOnline(ctx, userID, ttl)
}

func (s *presenceService) SetOffline(ctx context.Context, userID int64) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.WarnContext(ctx, "presence store unavailable, skipping offline",
			"user_id", userID, "error", err)
		return nil
	}
	s.notify(ctx, userID, common.StatusOffline)
	return nil
}

func (s *presenceService) GetStatus(ctx context.Context, userID int64) (common.PresenceStatus, error) {
	if err := validateUserID(userID); err != nil {
		return "", err
	}
	online, err := s.store.IsOnline(ctx, userID)
	if err != nil {
		return "", common.Internal(err, "failed to read status of user %d", userID)
	}
	if online {
		return common.StatusOnline, nil
	}
	return common.StatusOffline, nil
}

func (s *presenceService) GetStatuses(ctx context.Context, userIDs []int64) (map[int64]common.PresenceStatus, error) {
	for _, id := range userIDs {
		if err := validateUserID(id); err != nil {
			return nil, err
		}
	}
	online, err := s.store.OnlineMany(ctx, userIDs)
	if err != nil {
		return nil, common.Internal(err, "failed to read status of %d users", len(userIDs))
	}

	statuses := make(map[int64]common.PresenceStatus, len(userIDs))
	for _, id := range userIDs {
		if online[id] {
			statuses[id] = common.StatusOnline
		} else {
			statuses[id] = common.StatusOffline
		}
	}
	return statuses, nil
}

// notify publishes the transition to everyone sharing a chat with the user.
// Failures here never fail the transition itself.
func (s *presenceService) notify(ctx context.Context, userID int64, status common.PresenceStatus) {
	transitionsTotal.WithLabelValues(string(status)).Inc()

	recipients, err := s.members.Relations(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve presence recipients",
			"user_id", userID, "status", status, "error", err)
		return
	}
	if len(recipients) == 0 {
		s.logger.DebugContext(ctx, "no recipients for status change", "user_id", userID, "status", status)
		return
	}

	ev := events.UserStatusChanged{UserID: userID, Status: string(status), Recipients: recipients}
	if err := s.publisher.Publish(ctx, events.Key(userID), ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish status change",
			"user_id", userID, "status", status, "error", err)
		return
	}
	s.logger.DebugContext(ctx, "status change published",
		"user_id", userID, "status", status, "recipients", len(recipients))
}
