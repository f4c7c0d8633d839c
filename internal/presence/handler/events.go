package handler

import (
	"context"
	"log/slog"

	"gochat/internal/eventbus"
	"gochat/internal/events"
	"gochat/internal/presence/repository"
)

// ConsumerGroup is the queue group presence replicas share on the bus.
const ConsumerGroup = "presence_service"

// MembershipConsumer applies chat and user lifecycle events to the
// membership replica used to fan out status changes.
type MembershipConsumer struct {
	members repository.MembershipRepository
	logger  *slog.Logger
}

func NewMembershipConsumer(members repository.MembershipRepository, logger *slog.Logger) *MembershipConsumer {
	return &MembershipConsumer{members: members, logger: logger.With("component", "membership_consumer")}
}

// Register subscribes the consumer to the topics it cares about.
func (c *MembershipConsumer) Register(bus eventbus.Bus) error {
	for _, topic := range []string{events.TopicChat, events.TopicUser} {
		if err := bus.Subscribe(topic, ConsumerGroup, c.Handle); err != nil {
			return err
		}
	}
	return nil
}

func (c *MembershipConsumer) Handle(ctx context.Context, ev events.Event) error {
	switch e := ev.(type) {
	case *events.ChatCreated:
		return c.members.ReplaceMembers(ctx, e.ID, e.Members)
	case *events.ChatUpdated:
		return c.members.ReplaceMembers(ctx, e.ID, e.Members)
	case *events.ChatDeleted:
		return c.members.DeleteChat(ctx, e.ID)
	case *events.UserDeactivated:
		return c.members.DeleteUser(ctx, e.ID)
	default:
		c.logger.DebugContext(ctx, "ignoring event", "event_type", ev.EventType())
		return nil
	}
}
