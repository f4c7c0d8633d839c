package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MessagesCollection     = "messages"
	ReadStatusCollection   = "read_statuses"
	ReadProgressCollection = "read_progress"
)

// Message ids are ObjectIDs: they sort by creation time, which is what the
// read-tracking range scan relies on.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ChatID    int64              `bson:"chat_id"`
	UserID    int64              `bson:"user_id"`
	Content   string             `bson:"content"`
	IsRead    bool               `bson:"is_read"`
	CreatedAt time.Time          `bson:"created_at"`
	Metadata  MessageMetadata    `bson:"metadata"`
}

type MessageMetadata struct {
	IsEdited    bool               `bson:"is_edited"`
	IsPinned    bool               `bson:"is_pinned"`
	Reactions   map[string][]int64 `bson:"reactions"`
	ReplyTo     *ReplyData         `bson:"reply_to,omitempty"`
	ForwardFrom *ForwardData       `bson:"forward_from,omitempty"`
}

type ReplyData struct {
	MessageID string `bson:"message_id"`
	UserID    int64  `bson:"user_id"`
	Username  string `bson:"username"`
	Preview   string `bson:"preview"`
}

type ForwardData struct {
	MessageID string `bson:"message_id"`
	ChatID    int64  `bson:"chat_id"`
	UserID    int64  `bson:"user_id"`
}

type ReadStatus struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MessageID primitive.ObjectID `bson:"message_id"`
	ReadBy    int64              `bson:"read_by"`
	ReadAt    time.Time          `bson:"read_at"`
}

type ReadProgress struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	ChatID            int64              `bson:"chat_id"`
	UserID            int64              `bson:"user_id"`
	LastReadMessageID primitive.ObjectID `bson:"last_read_message_id"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}
