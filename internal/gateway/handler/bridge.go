package handler

import (
	"context"
	"log/slog"

	"gochat/internal/common"
	"gochat/internal/eventbus"
	"gochat/internal/events"
)

// Sender delivers frames to connected users and drops users whose presence
// went away elsewhere.
type Sender interface {
	SendPersonal(userID int64, payload any) int
	Broadcast(userIDs []int64, payload any) int
	IsConnected(userID int64) bool
	Kill(ctx context.Context, userID int64, setOffline bool)
}

// Bridge turns message and presence events into client frames.
type Bridge struct {
	sender   Sender
	presence StatusReader
	logger   *slog.Logger
}

func NewBridge(sender Sender, presence StatusReader, logger *slog.Logger) *Bridge {
	return &Bridge{sender: sender, presence: presence, logger: logger.With("component", "ws_bridge")}
}

// Register subscribes the bridge. Every gateway instance holds different
// sockets, so each one needs its own group and sees every event.
func (b *Bridge) Register(bus eventbus.Bus, group string) error {
	for _, topic := range []string{events.TopicMessage, events.TopicPresence} {
		if err := bus.Subscribe(topic, group, b.Handle); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bridge) Handle(ctx context.Context, ev events.Event) error {
	switch e := ev.(type) {
	case *events.MessageCreated:
		b.sender.Broadcast(others(e.Recipients, e.SenderID), Frame{EventType: EventNewMessage, Payload: e.Data})
		b.sender.SendPersonal(e.SenderID, Frame{
			EventType: EventMessageSent,
			Payload: sentMessage{
				ID:        e.Data.ID,
				ChatID:    e.Data.ChatID,
				Content:   e.Data.Content,
				CreatedAt: e.Data.CreatedAt,
				ReplyTo:   e.Data.ReplyTo,
			},
			RequestID: e.RequestID,
		})

	case *events.MessageUpdated:
		b.sender.Broadcast(others(e.Recipients, e.SenderID), Frame{EventType: EventUpdateMessage, Payload: e.Data})
		b.sender.SendPersonal(e.SenderID, Frame{EventType: EventMessageUpdated, Payload: e.Data, RequestID: e.RequestID})

	case *events.MessageDeleted:
		b.sender.Broadcast(others(e.Recipients, e.SenderID), Frame{EventType: EventDeleteMessage, Payload: e.Data})
		b.sender.SendPersonal(e.SenderID, Frame{EventType: EventMessageDeleted, Payload: e.Data, RequestID: e.RequestID})

	case *events.MessagesRead:
		// each author learns which of their own messages were read
		bySender := make(map[int64][]string)
		var order []int64
		for _, m := range e.Messages {
			if _, ok := bySender[m.SenderID]; !ok {
				order = append(order, m.SenderID)
			}
			bySender[m.SenderID] = append(bySender[m.SenderID], m.MessageID)
		}
		for _, senderID := range order {
			b.sender.SendPersonal(senderID, Frame{EventType: EventReadMessages, Payload: bySender[senderID]})
		}

	case *events.ReactionAdded:
		b.sender.Broadcast(e.Recipients, Frame{EventType: EventReactionAdded, Payload: reactionPayload{
			MessageID: e.MessageID, ChatID: e.ChatID, Author: e.Author, Reaction: e.Reaction,
		}})
	case *events.ReactionRemoved:
		b.sender.Broadcast(e.Recipients, Frame{EventType: EventReactionRemoved, Payload: reactionPayload{
			MessageID: e.MessageID, ChatID: e.ChatID, Author: e.Author, Reaction: e.Reaction,
		}})

	case *events.UserStatusChanged:
		b.sender.Broadcast(e.Recipients, Frame{EventType: EventUpdateUserStatus, Payload: userStatusPayload{
			UserID: e.UserID, Status: e.Status,
		}})
		if common.ParsePresenceStatus(e.Status) == common.StatusOffline {
			b.dropStale(ctx, e.UserID)
		}

	default:
		b.logger.DebugContext(ctx, "ignoring event", "event_type", ev.EventType())
	}
	return nil
}

// dropStale closes the local sockets of a user whose presence expired or was
// cleared by another gateway. Presence is re-read first: an event older than
// a reconnect must not kill the new socket.
func (b *Bridge) dropStale(ctx context.Context, userID int64) {
	if !b.sender.IsConnected(userID) {
		return
	}
	statuses, err := b.presence.Statuses(ctx, []int64{userID})
	if err != nil {
		b.logger.WarnContext(ctx, "presence lookup failed, keeping sockets", "user_id", userID, "error", err)
		return
	}
	for _, st := range statuses {
		if st.ID == userID && common.ParsePresenceStatus(st.Status) == common.StatusOnline {
			return
		}
	}
	b.logger.InfoContext(ctx, "user went offline elsewhere, closing sockets", "user_id", userID)
	b.sender.Kill(ctx, userID, false)
}

func others(recipients []int64, senderID int64) []int64 {
	out := make([]int64, 0, len(recipients))
	for _, id := range recipients {
		if id != senderID {
			out = append(out, id)
		}
	}
	return out
}
