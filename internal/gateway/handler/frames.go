// Package handler terminates client WebSocket and HTTP traffic for the
// gateway and relays bus events to connected users.
package handler

import (
	"encoding/json"
	"errors"
	"time"

	"google.golang.org/grpc/status"

	"gochat/internal/common"
	"gochat/internal/events"
)

// Client -> server commands.
const (
	CommandSendMessage   = "send_message"
	CommandEditMessage   = "edit_message"
	CommandDeleteMessage = "delete_message"
	CommandMarkAsRead    = "mark_as_read"
)

// Server -> client event names.
const (
	EventNewMessage       = "new_message"
	EventMessageSent      = "message_sended"
	EventUpdateMessage    = "update_message"
	EventMessageUpdated   = "message_updated"
	EventDeleteMessage    = "delete_message"
	EventMessageDeleted   = "message_deleted"
	EventReadMessages     = "read_messages"
	EventReactionAdded    = "reaction_added"
	EventReactionRemoved  = "reaction_removed"
	EventUpdateUserStatus = "update_user_status"
	EventError            = "error"
)

// Frame is every server -> client message except keepalive pings.
type Frame struct {
	EventType string `json:"event_type"`
	Payload   any    `json:"payload"`
	RequestID string `json:"request_id,omitempty"`
}

type keepaliveFrame struct {
	Type string `json:"type"`
}

var pingFrame = keepaliveFrame{Type: "ping"}

// inboundFrame is either a command or a {"type":"pong"} keepalive answer.
type inboundFrame struct {
	Type      string          `json:"type,omitempty"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	RequestID string          `json:"request_id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// errorFrame reports err to the client using gRPC code names, the same way
// HTTP errors are reported.
func errorFrame(err error, requestID string) Frame {
	code := common.GRPCCode(err)
	return Frame{
		EventType: EventError,
		Payload:   ErrorPayload{Code: common.ErrorCodeName(code), Details: errorDetails(err)},
		RequestID: requestID,
	}
}

func errorDetails(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == common.KindInternal {
			return "internal error"
		}
		return appErr.Message
	}
	if s, ok := status.FromError(err); ok {
		return s.Message()
	}
	return "internal error"
}

type sendMessagePayload struct {
	ChatID      int64  `json:"chat_id"`
	Content     string `json:"content"`
	ReplyTo     string `json:"reply_to,omitempty"`
	ForwardFrom string `json:"forward_from,omitempty"`
}

type editMessagePayload struct {
	MessageID  string `json:"message_id"`
	NewContent string `json:"new_content"`
}

type deleteMessagePayload struct {
	MessageID string `json:"message_id"`
}

type markAsReadPayload struct {
	ChatID          int64  `json:"chat_id"`
	LastReadMessage string `json:"last_read_message"`
}

// sentMessage is what the author gets back: the new message without the
// sender block.
type sentMessage struct {
	ID        string               `json:"id"`
	ChatID    int64                `json:"chat_id"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"created_at"`
	ReplyTo   *events.ReplyPreview `json:"reply_to,omitempty"`
}

type reactionPayload struct {
	MessageID string `json:"message_id"`
	ChatID    int64  `json:"chat_id"`
	Author    int64  `json:"author"`
	Reaction  string `json:"reaction"`
}

type userStatusPayload struct {
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}
