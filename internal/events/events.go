// Package events defines the messages services exchange over the bus.
//
// Every message travels inside an Envelope whose event_type names the
// concrete payload. Decode turns raw bytes back into one of the types
// below; consumers switch on the pointer type they get back.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	TopicUser       = "user.event"
	TopicChat       = "chat.events"
	TopicMessage    = "message.events"
	TopicPresence   = "presence.status"
	TopicMarkAsRead = "mark_as_read"
)

const (
	TypeUserCreated     = "UserCreated"
	TypeUserUpdated     = "UserUpdated"
	TypeUserDeactivated = "UserDeactivated"

	TypeChatCreated = "ChatCreated"
	TypeChatUpdated = "ChatUpdated"
	TypeChatDeleted = "ChatDeleted"

	TypeMessageCreated  = "MessageCreated"
	TypeMessageUpdated  = "MessageUpdated"
	TypeMessageDeleted  = "MessageDeleted"
	TypeMessagesRead    = "MessagesRead"
	TypeReactionAdded   = "ReactionAdded"
	TypeReactionRemoved = "ReactionRemoved"

	TypeUserStatusChanged = "UserStatusChanged"
	TypeMarkAsRead        = "MarkAsRead"
)

var ErrUnknownEvent = errors.New("unknown event type")

// Event is implemented by every payload type in this package.
type Event interface {
	EventType() string
	Topic() string
}

// Publisher is what services need to emit events. key selects the partition;
// events sharing a key are delivered in publish order.
type Publisher interface {
	Publish(ctx context.Context, key string, ev Event) error
}

// Key formats an entity id as a partition key.
func Key(id int64) string {
	return strconv.FormatInt(id, 10)
}

type Envelope struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

// ---- identity service ----

type UserCreated struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	IsActive bool   `json:"is_active"`
}

type UserUpdated struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	IsActive bool   `json:"is_active"`
}

type UserDeactivated struct {
	ID int64 `json:"id"`
}

func (UserCreated) EventType() string     { return TypeUserCreated }
func (UserUpdated) EventType() string     { return TypeUserUpdated }
func (UserDeactivated) EventType() string { return TypeUserDeactivated }
func (UserCreated) Topic() string         { return TopicUser }
func (UserUpdated) Topic() string         { return TopicUser }
func (UserDeactivated) Topic() string     { return TopicUser }

// ---- chat service ----

type ChatCreated struct {
	ID      int64   `json:"id"`
	Type    string  `json:"type"`
	Name    string  `json:"name,omitempty"`
	Avatar  string  `json:"avatar,omitempty"`
	Members []int64 `json:"members"`
}

type ChatUpdated struct {
	ID      int64   `json:"id"`
	Type    string  `json:"type"`
	Name    string  `json:"name,omitempty"`
	Avatar  string  `json:"avatar,omitempty"`
	Members []int64 `json:"members"`
}

type ChatDeleted struct {
	ID int64 `json:"id"`
}

func (ChatCreated) EventType() string { return TypeChatCreated }
func (ChatUpdated) EventType() string { return TypeChatUpdated }
func (ChatDeleted) EventType() string { return TypeChatDeleted }
func (ChatCreated) Topic() string     { return TopicChat }
func (ChatUpdated) Topic() string     { return TopicChat }
func (ChatDeleted) Topic() string     { return TopicChat }

// ---- message service ----

type Sender struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type ReplyPreview struct {
	MessageID string `json:"message_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Preview   string `json:"preview"`
}

type MessageData struct {
	ID        string        `json:"id"`
	ChatID    int64         `json:"chat_id"`
	Content   string        `json:"content"`
	Sender    Sender        `json:"sender"`
	CreatedAt time.Time     `json:"created_at"`
	ReplyTo   *ReplyPreview `json:"reply_to,omitempty"`
}

type MessageCreated struct {
	Recipients []int64     `json:"recipients"`
	SenderID   int64       `json:"sender_id"`
	RequestID  string      `json:"request_id,omitempty"`
	Data       MessageData `json:"data"`
}

type UpdatedMessage struct {
	ID      string `json:"id"`
	ChatID  int64  `json:"chat_id"`
	Content string `json:"content"`
}

type MessageUpdated struct {
	Recipients []int64        `json:"recipients"`
	SenderID   int64          `json:"sender_id"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       UpdatedMessage `json:"data"`
}

type DeletedMessage struct {
	ID     string `json:"id"`
	ChatID int64  `json:"chat_id"`
}

type MessageDeleted struct {
	Recipients []int64        `json:"recipients"`
	SenderID   int64          `json:"sender_id"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       DeletedMessage `json:"data"`
}

// ReadMessage pairs a message that just became read with its author, who
// is the one to notify.
type ReadMessage struct {
	MessageID string `json:"message_id"`
	SenderID  int64  `json:"sender_id"`
}

type MessagesRead struct {
	ReaderID int64         `json:"reader_id"`
	ChatID   int64         `json:"chat_id"`
	Messages []ReadMessage `json:"messages"`
}

type ReactionAdded struct {
	Recipients []int64 `json:"recipients"`
	MessageID  string  `json:"message_id"`
	ChatID     int64   `json:"chat_id"`
	Author     int64   `json:"author"`
	Reaction   string  `json:"reaction"`
}

type ReactionRemoved struct {
	Recipients []int64 `json:"recipients"`
	MessageID  string  `json:"message_id"`
	ChatID     int64   `json:"chat_id"`
	Author     int64   `json:"author"`
	Reaction   string  `json:"reaction"`
}

func (MessageCreated) EventType() string  { return TypeMessageCreated }
func (MessageUpdated) EventType() string  { return TypeMessageUpdated }
func (MessageDeleted) EventType() string  { return TypeMessageDeleted }
func (MessagesRead) EventType() string    { return TypeMessagesRead }
func (ReactionAdded) EventType() string   { return TypeReactionAdded }
func (ReactionRemoved) EventType() string { return TypeReactionRemoved }
func (MessageCreated) Topic() string      { return TopicMessage }
func (MessageUpdated) Topic() string      { return TopicMessage }
func (MessageDeleted) Topic() string      { return TopicMessage }
func (MessagesRead) Topic() string        { return TopicMessage }
func (ReactionAdded) Topic() string       { return TopicMessage }
func (ReactionRemoved) Topic() string     { return TopicMessage }

// ---- presence service ----

type UserStatusChanged struct {
	UserID     int64   `json:"user_id"`
	Status     string  `json:"status"`
	Recipients []int64 `json:"recipients"`
}

func (UserStatusChanged) EventType() string { return TypeUserStatusChanged }
func (UserStatusChanged) Topic() string     { return TopicPresence }

// ---- gateway ----

// MarkAsRead is the gateway forwarding a client's read pointer to the
// message service.
type MarkAsRead struct {
	UserID            int64  `json:"user_id"`
	ChatID            int64  `json:"chat_id"`
	LastReadMessageID string `json:"last_read_message_id"`
}

func (MarkAsRead) EventType() string { return TypeMarkAsRead }
func (MarkAsRead) Topic() string     { return TopicMarkAsRead }

var registry = map[string]func() Event{
	TypeUserCreated:       func() Event { return &UserCreated{} },
	TypeUserUpdated:       func() Event { return &UserUpdated{} },
	TypeUserDeactivated:   func() Event { return &UserDeactivated{} },
	TypeChatCreated:       func() Event { return &ChatCreated{} },
	TypeChatUpdated:       func() Event { return &ChatUpdated{} },
	TypeChatDeleted:       func() Event { return &ChatDeleted{} },
	TypeMessageCreated:    func() Event { return &MessageCreated{} },
	TypeMessageUpdated:    func() Event { return &MessageUpdated{} },
	TypeMessageDeleted:    func() Event { return &MessageDeleted{} },
	TypeMessagesRead:      func() Event { return &MessagesRead{} },
	TypeReactionAdded:     func() Event { return &ReactionAdded{} },
	TypeReactionRemoved:   func() Event { return &ReactionRemoved{} },
	TypeUserStatusChanged: func() Event { return &UserStatusChanged{} },
	TypeMarkAsRead:        func() Event { return &MarkAsRead{} },
}

// Encode wraps ev in an Envelope.
func Encode(ev Event) ([]byte, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", ev.EventType(), err)
	}
	return json.Marshal(Envelope{EventType: ev.EventType(), Payload: payload})
}

// Decode parses an Envelope and returns a pointer to the concrete payload.
func Decode(data []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse envelope: %w", err)
	}
	factory, ok := registry[env.EventType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.EventType)
	}
	ev := factory()
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, ev); err != nil {
			return nil, fmt.Errorf("failed to parse %s payload: %w", env.EventType, err)
		}
	}
	return ev, nil
}
