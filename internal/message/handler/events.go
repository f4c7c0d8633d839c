package handler

import (
	"context"
	"log/slog"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
	"gochat/internal/eventbus"
	"gochat/internal/events"
	"gochat/internal/message/repository"
	"gochat/internal/message/service"
)

// ConsumerGroup is the queue group message service replicas share on the bus.
const ConsumerGroup = "message_service"

// EventConsumer keeps the user and chat replicas current and applies read
// pointers forwarded by the gateway.
type EventConsumer struct {
	replicas       repository.ReplicaRepository
	messageService service.MessageService
	logger         *slog.Logger
}

func NewEventConsumer(replicas repository.ReplicaRepository, messageService service.MessageService, logger *slog.Logger) *EventConsumer {
	return &EventConsumer{
		replicas:       replicas,
		messageService: messageService,
		logger:         logger.With("component", "message_consumer"),
	}
}

func (c *EventConsumer) Register(bus eventbus.Bus) error {
	for _, topic := range []string{events.TopicUser, events.TopicChat, events.TopicMarkAsRead} {
		if err := bus.Subscribe(topic, ConsumerGroup, c.Handle); err != nil {
			return err
		}
	}
	return nil
}

func (c *EventConsumer) Handle(ctx context.Context, ev events.Event) error {
	switch e := ev.(type) {
	case *events.UserCreated:
		return c.replicas.UpsertUser(ctx, &dbmysql.UserReplica{
			UserID: e.ID, Username: e.Username, Avatar: e.Avatar, IsActive: e.IsActive,
		})
	case *events.UserUpdated:
		return c.replicas.UpsertUser(ctx, &dbmysql.UserReplica{
			UserID: e.ID, Username: e.Username, Avatar: e.Avatar, IsActive: e.IsActive,
		})
	case *events.UserDeactivated:
		return c.replicas.DeactivateUser(ctx, e.ID)

	case *events.ChatCreated:
		return c.replicas.UpsertChat(ctx, c.chatReplica(ctx, e.ID, e.Type, e.Name, e.Avatar), e.Members)
	case *events.ChatUpdated:
		return c.replicas.UpsertChat(ctx, c.chatReplica(ctx, e.ID, e.Type, e.Name, e.Avatar), e.Members)
	case *events.ChatDeleted:
		if err := c.replicas.DeleteChat(ctx, e.ID); err != nil {
			return err
		}
		return c.messageService.DeleteChatMessages(ctx, e.ID)

	case *events.MarkAsRead:
		_, err := c.messageService.MarkAsRead(ctx, e.ChatID, e.UserID, e.LastReadMessageID)
		return err

	default:
		c.logger.DebugContext(ctx, "ignoring event", "event_type", ev.EventType())
		return nil
	}
}

// chatReplica keeps unknown chat types; the chat service may add kinds
// before this service learns about them.
func (c *EventConsumer) chatReplica(ctx context.Context, id int64, chatType, name, avatar string) *dbmysql.ChatReplica {
	t := common.ChatType(chatType)
	if !t.IsValid() {
		c.logger.WarnContext(ctx, "unknown chat type", "chat_id", id, "type", chatType)
	}
	return &dbmysql.ChatReplica{ChatID: id, Type: t, Name: name, Avatar: avatar}
}
