package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"

	msgpb "gochat/api/v1/message"
	"gochat/internal/common"
	"gochat/internal/events"
)

// Commands executes client frames. Message writes go to the message service
// over gRPC; read pointers go over the bus.
type Commands struct {
	messages  msgpb.MessageServiceClient
	publisher events.Publisher
	timeout   time.Duration
	logger    *slog.Logger
}

func NewCommands(messages msgpb.MessageServiceClient, publisher events.Publisher, timeout time.Duration, logger *slog.Logger) *Commands {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Commands{
		messages:  messages,
		publisher: publisher,
		timeout:   timeout,
		logger:    logger.With("component", "ws_commands"),
	}
}

// Handle runs one command for userID. The returned frame, if any, is an
// error to send back to the same socket. Successful writes are confirmed
// asynchronously through the bus.
func (c *Commands) Handle(ctx context.Context, userID int64, frame inboundFrame) *Frame {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var err error
	switch frame.EventType {
	case CommandSendMessage:
		err = c.sendMessage(ctx, userID, frame)
	case CommandEditMessage:
		err = c.editMessage(ctx, userID, frame)
	case CommandDeleteMessage:
		err = c.deleteMessage(ctx, userID, frame)
	case CommandMarkAsRead:
		err = c.markAsRead(ctx, userID, frame)
	default:
		c.logger.WarnContext(ctx, "unknown command", "user_id", userID, "event_type", frame.EventType)
		return nil
	}
	if err == nil {
		return nil
	}

	if common.GRPCCode(err) == codes.Internal {
		c.logger.ErrorContext(ctx, "command failed", "user_id", userID, "event_type", frame.EventType, "error", err)
	}
	f := errorFrame(err, frame.RequestID)
	return &f
}

func (c *Commands) sendMessage(ctx context.Context, userID int64, frame inboundFrame) error {
	var p sendMessagePayload
	if err := decodePayload(frame, &p); err != nil {
		return err
	}
	_, err := c.messages.SendMessage(ctx, &msgpb.SendMessageRequest{
		ChatID:      p.ChatID,
		UserID:      userID,
		Content:     p.Content,
		RequestID:   frame.RequestID,
		ReplyTo:     p.ReplyTo,
		ForwardFrom: p.ForwardFrom,
	})
	return err
}

func (c *Commands) editMessage(ctx context.Context, userID int64, frame inboundFrame) error {
	var p editMessagePayload
	if err := decodePayload(frame, &p); err != nil {
		return err
	}
	_, err := c.messages.UpdateMessage(ctx, &msgpb.UpdateMessageRequest{
		MessageID:  p.MessageID,
		SenderID:   userID,
		NewContent: p.NewContent,
		RequestID:  frame.RequestID,
	})
	return err
}

func (c *Commands) deleteMessage(ctx context.Context, userID int64, frame inboundFrame) error {
	var p deleteMessagePayload
	if err := decodePayload(frame, &p); err != nil {
		return err
	}
	_, err := c.messages.DeleteMessage(ctx, &msgpb.DeleteMessageRequest{
		MessageID: p.MessageID,
		SenderID:  userID,
		RequestID: frame.RequestID,
	})
	return err
}

func (c *Commands) markAsRead(ctx context.Context, userID int64, frame inboundFrame) error {
	var p markAsReadPayload
	if err := decodePayload(frame, &p); err != nil {
		return err
	}
	if p.ChatID <= 0 || p.LastReadMessage == "" {
		return common.Validation("chat_id and last_read_message are required")
	}
	return c.publisher.Publish(ctx, events.Key(p.ChatID), events.MarkAsRead{
		UserID:            userID,
		ChatID:            p.ChatID,
		LastReadMessageID: p.LastReadMessage,
	})
}

func decodePayload(frame inboundFrame, v any) error {
	if len(frame.Payload) == 0 {
		return common.Validation("%s: payload is required", frame.EventType)
	}
	if err := json.Unmarshal(frame.Payload, v); err != nil {
		return common.Validation("%s: malformed payload", frame.EventType)
	}
	return nil
}
