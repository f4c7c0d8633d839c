package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gochat/internal/common"
	"gochat/internal/dbmongo"
	"gochat/internal/dbmysql"
	"gochat/internal/events"
	"gochat/internal/message/repository"
)

const (
	previewLength   = 50
	previewTruncate = 47
)

// SendInput is everything needed to post a message.
type SendInput struct {
	ChatID      int64
	UserID      int64
	Content     string
	RequestID   string
	ReplyTo     string
	ForwardFrom string
}

// MessageService defines the interface exposed to the handler layer
type MessageService interface {
	Send(ctx context.Context, in SendInput) (*dbmongo.Message, error)
	Update(ctx context.Context, messageID string, userID int64, content, requestID string) (*dbmongo.Message, error)
	Delete(ctx context.Context, messageID string, userID int64, requestID string) error
	// Get loads one message; with full set it also loads who read it.
	Get(ctx context.Context, messageID string, full bool) (*dbmongo.Message, []dbmongo.ReadStatus, error)
	// GetAll returns the chat's messages oldest first and the usernames of their authors.
	GetAll(ctx context.Context, chatID int64) ([]*dbmongo.Message, map[int64]string, error)
	AddReaction(ctx context.Context, messageID, label string, userID int64) error
	RemoveReaction(ctx context.Context, messageID, label string, userID int64) error
	MarkAsRead(ctx context.Context, chatID, userID int64, lastReadID string) ([]events.ReadMessage, error)
	DeleteChatMessages(ctx context.Context, chatID int64) error
}

type messageService struct {
	messages  repository.MessageRepository
	replicas  repository.ReplicaRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewMessageService(
	messages repository.MessageRepository,
	replicas repository.ReplicaRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) MessageService {
	return &messageService{
		messages:  messages,
		replicas:  replicas,
		publisher: publisher,
		logger:    logger.With("component", "message_service"),
	}
}

func parseMessageID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.Validation("invalid message id %q", raw)
	}
	return id, nil
}

// Preview shortens a replied-to message for display next to the reply.
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}
	return string([]rune(content)[:previewTruncate]) + "..."
}

func (s *messageService) getMessage(ctx context.Context, raw string) (*dbmongo.Message, error) {
	id, err := parseMessageID(raw)
	if err != nil {
		return nil, err
	}
	msg, err := s.messages.Get(ctx, id)
	if errors.Is(err, repository.ErrMessageNotFound) {
		return nil, common.NotFound("message %s not found", raw)
	}
	if err != nil {
		return nil, common.Internal(err, "failed to load message %s", raw)
	}
	return msg, nil
}

func (s *messageService) getUser(ctx context.Context, userID int64) (*dbmysql.UserReplica, error) {
	user, err := s.replicas.GetUser(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, common.NotFound("user %d not found", userID)
	}
	if err != nil {
		return nil, common.Internal(err, "failed to load user %d", userID)
	}
	return user, nil
}

// checkAuthor verifies that userID wrote msg and is still an active member
// of its chat.
func (s *messageService) checkAuthor(ctx context.Context, msg *dbmongo.Message, userID int64) error {
	if msg.UserID != userID {
		return common.Validation("user %d is not the author of message %s", userID, msg.ID.Hex())
	}
	user, err := s.replicas.GetUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return common.Internal(err, "failed to load user %d", userID)
	}
	if user == nil || !user.IsActive {
		return common.Validation("user %d is not active", userID)
	}
	chat, err := s.replicas.GetChat(ctx, msg.ChatID)
	if err != nil && !errors.Is(err, repository.ErrChatNotFound) {
		return common.Internal(err, "failed to load chat %d", msg.ChatID)
	}
	if chat == nil || !chat.HasMember(userID) {
		return common.Validation("user %d is not a member of chat %d", userID, msg.ChatID)
	}
	return nil
}

func (s *messageService) recipients(ctx context.Context, chatID int64) []int64 {
	ids, err := s.replicas.ActiveMembers(ctx, chatID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve recipients", "chat_id", chatID, "error", err)
		return nil
	}
	return ids
}

// publish never fails the caller: the write already happened and clients
// that miss the push catch up by pulling.
func (s *messageService) publish(ctx context.Context, chatID int64, ev events.Event) {
	if err := s.publisher.Publish(ctx, events.Key(chatID), ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event",
			"event_type", ev.EventType(), "chat_id", chatID, "error", err)
	}
}

func (s *messageService) Send(ctx context.Context, in SendInput) (*dbmongo.Message, error) {
	var problems []string

	chat, err := s.replicas.GetChat(ctx, in.ChatID)
	switch {
	case errors.Is(err, repository.ErrChatNotFound):
		problems = append(problems, "chat_id")
	case err != nil:
		return nil, common.Internal(err, "failed to load chat %d", in.ChatID)
	}

	user, err := s.replicas.GetUser(ctx, in.UserID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		problems = append(problems, "user_id")
	case err != nil:
		return nil, common.Internal(err, "failed to load user %d", in.UserID)
	case !user.IsActive:
		problems = append(problems, "user_id")
		user = nil
	}

	if chat != nil && user != nil && !chat.HasMember(user.UserID) {
		problems = append(problems, "not a member")
	}
	if len(problems) > 0 {
		s.logger.WarnContext(ctx, "rejected message", "chat_id", in.ChatID, "user_id", in.UserID, "problems", problems)
		return nil, common.Validation("invalid message: %s", strings.Join(problems, ", "))
	}
	if err := common.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	msg := &dbmongo.Message{
		ChatID:  in.ChatID,
		UserID:  in.UserID,
		Content: in.Content,
		Metadata: dbmongo.MessageMetadata{
			Reactions: map[string][]int64{},
		},
	}

	if in.ReplyTo != "" {
		replied, err := s.getMessage(ctx, in.ReplyTo)
		if err != nil {
			return nil, err
		}
		// replies across chats are stored as plain messages
		if replied.ChatID == in.ChatID {
			reply := &dbmongo.ReplyData{
				MessageID: replied.ID.Hex(),
				UserID:    replied.UserID,
				Preview:   Preview(replied.Content),
			}
			if author, err := s.replicas.GetUser(ctx, replied.UserID); err == nil {
				reply.Username = author.Username
			}
			msg.Metadata.ReplyTo = reply
		}
	}

	if in.ForwardFrom != "" {
		original, err := s.getMessage(ctx, in.ForwardFrom)
		if err != nil {
			return nil, err
		}
		msg.Metadata.ForwardFrom = &dbmongo.ForwardData{
			MessageID: original.ID.Hex(),
			ChatID:    original.ChatID,
			UserID:    original.UserID,
		}
	}

	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, common.Internal(err, "failed to store message")
	}
	s.logger.InfoContext(ctx, "message stored", "message_id", msg.ID.Hex(), "chat_id", msg.ChatID, "user_id", msg.UserID)

	data := events.MessageData{
		ID:        msg.ID.Hex(),
		ChatID:    msg.ChatID,
		Content:   msg.Content,
		Sender:    events.Sender{ID: user.UserID, Username: user.Username},
		CreatedAt: msg.CreatedAt,
	}
	if r := msg.Metadata.ReplyTo; r != nil {
		data.ReplyTo = &events.ReplyPreview{MessageID: r.MessageID, UserID: r.UserID, Username: r.Username, Preview: r.Preview}
	}
	s.publish(ctx, msg.ChatID, events.MessageCreated{
		Recipients: s.recipients(ctx, msg.ChatID),
		SenderID:   in.UserID,
		RequestID:  in.RequestID,
		Data:       data,
	})
	return msg, nil
}

func (s *messageService) Update(ctx context.Context, messageID string, userID int64, content, requestID string) (*dbmongo.Message, error) {
	msg, err := s.getMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, msg, userID); err != nil {
		return nil, err
	}
	if err := common.ValidateContent(content); err != nil {
		return nil, err
	}

	if err := s.messages.UpdateContent(ctx, msg.ID, content); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, common.NotFound("message %s not found", messageID)
		}
		return nil, common.Internal(err, "failed to update message %s", messageID)
	}
	msg.Content = content
	msg.Metadata.IsEdited = true
	s.logger.InfoContext(ctx, "message updated", "message_id", messageID, "chat_id", msg.ChatID)

	s.publish(ctx, msg.ChatID, events.MessageUpdated{
		Recipients: s.recipients(ctx, msg.ChatID),
		SenderID:   userID,
		RequestID:  requestID,
		Data:       events.UpdatedMessage{ID: messageID, ChatID: msg.ChatID, Content: content},
	})
	return msg, nil
}

func (s *messageService) Delete(ctx context.Context, messageID string, userID int64, requestID string) error {
	msg, err := s.getMessage(ctx, messageID)
	if err != nil {
		return err
	}
	if err := s.checkAuthor(ctx, msg, userID); err != nil {
		return err
	}

	if err := s.messages.Delete(ctx, msg.ID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return common.NotFound("message %s not found", messageID)
		}
		return common.Internal(err, "failed to delete message %s", messageID)
	}
	s.logger.InfoContext(ctx, "message deleted", "message_id", messageID, "chat_id", msg.ChatID)

	s.publish(ctx, msg.ChatID, events.MessageDeleted{
		Recipients: s.recipients(ctx, msg.ChatID),
		SenderID:   userID,
		RequestID:  requestID,
		Data:       events.DeletedMessage{ID: messageID, ChatID: msg.ChatID},
	})
	return nil
}

func (s *messageService) Get(ctx context.Context, messageID string, full bool) (*dbmongo.Message, []dbmongo.ReadStatus, error) {
	msg, err := s.getMessage(ctx, messageID)
	if err != nil {
		return nil, nil, err
	}
	if !full {
		return msg, nil, nil
	}
	statuses, err := s.messages.ReadStatuses(ctx, msg.ID)
	if err != nil {
		return nil, nil, common.Internal(err, "failed to load read statuses of %s", messageID)
	}
	return msg, statuses, nil
}

func (s *messageService) GetAll(ctx context.Context, chatID int64) ([]*dbmongo.Message, map[int64]string, error) {
	messages, err := s.messages.GetByChat(ctx, chatID)
	if err != nil {
		return nil, nil, common.Internal(err, "failed to load messages of chat %d", chatID)
	}

	seen := make(map[int64]struct{})
	authors := make([]int64, 0)
	for _, m := range messages {
		if _, ok := seen[m.UserID]; !ok {
			seen[m.UserID] = struct{}{}
			authors = append(authors, m.UserID)
		}
	}

	usernames := make(map[int64]string, len(authors))
	if len(authors) > 0 {
		users, err := s.replicas.GetUsers(ctx, authors)
		if err != nil {
			return nil, nil, common.Internal(err, "failed to load authors of chat %d", chatID)
		}
		for _, u := range users {
			usernames[u.UserID] = u.Username
		}
	}
	s.logger.DebugContext(ctx, "loaded chat history", "chat_id", chatID, "count", len(messages))
	return messages, usernames, nil
}

func (s *messageService) AddReaction(ctx context.Context, messageID, label string, userID int64) error {
	return s.react(ctx, messageID, label, userID, true)
}

func (s *messageService) RemoveReaction(ctx context.Context, messageID, label string, userID int64) error {
	return s.react(ctx, messageID, label, userID, false)
}

func (s *messageService) react(ctx context.Context, messageID, label string, userID int64, add bool) error {
	label, err := common.NormalizeReaction(label)
	if err != nil {
		return err
	}
	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	msg, err := s.getMessage(ctx, messageID)
	if err != nil {
		return err
	}

	var changed bool
	if add {
		changed, err = s.messages.AddReaction(ctx, msg.ID, label, userID)
	} else {
		changed, err = s.messages.RemoveReaction(ctx, msg.ID, label, userID)
	}
	if err != nil {
		return common.Internal(err, "failed to update reactions of %s", messageID)
	}
	if !changed {
		if add {
			return common.Conflict("reaction %q already added by user %d", label, userID)
		}
		return common.Conflict("reaction %q not present for user %d", label, userID)
	}

	recipients := s.recipients(ctx, msg.ChatID)
	if add {
		s.publish(ctx, msg.ChatID, events.ReactionAdded{
			Recipients: recipients, MessageID: messageID, ChatID: msg.ChatID, Author: userID, Reaction: label,
		})
	} else {
		s.publish(ctx, msg.ChatID, events.ReactionRemoved{
			Recipients: recipients, MessageID: messageID, ChatID: msg.ChatID, Author: userID, Reaction: label,
		})
	}
	return nil
}

// MarkAsRead moves the user's read pointer to lastReadID. Messages between
// the old and new pointer written by others get a read receipt; those that
// nobody had read before are reported to their authors.
func (s *messageService) MarkAsRead(ctx context.Context, chatID, userID int64, lastReadID string) ([]events.ReadMessage, error) {
	lastRead, err := parseMessageID(lastReadID)
	if err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, common.Validation("user_id must be positive, got %d", userID)
	}

	previous, err := s.messages.AdvanceProgress(ctx, chatID, userID, lastRead)
	if err != nil {
		return nil, common.Internal(err, "failed to update read progress")
	}
	// ObjectIDs sort by creation time, so byte order is message order
	if !previous.IsZero() && bytes.Compare(previous[:], lastRead[:]) >= 0 {
		s.logger.DebugContext(ctx, "read pointer not advanced", "chat_id", chatID, "user_id", userID)
		return nil, nil
	}

	inRange, err := s.messages.FindReadRange(ctx, chatID, userID, previous, lastRead)
	if err != nil {
		return nil, common.Internal(err, "failed to load messages to mark read")
	}
	if len(inRange) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, len(inRange))
	for i, m := range inRange {
		ids[i] = m.ID
	}
	if err := s.messages.UpsertReadStatuses(ctx, ids, userID, time.Now().UTC()); err != nil {
		return nil, common.Internal(err, "failed to store read receipts")
	}
	flipped, err := s.messages.MarkRead(ctx, ids)
	if err != nil {
		return nil, common.Internal(err, "failed to mark messages read")
	}
	s.logger.InfoContext(ctx, "messages read", "chat_id", chatID, "user_id", userID, "receipts", len(ids), "newly_read", len(flipped))

	if len(flipped) == 0 {
		return nil, nil
	}
	read := make([]events.ReadMessage, len(flipped))
	for i, m := range flipped {
		read[i] = events.ReadMessage{MessageID: m.ID.Hex(), SenderID: m.UserID}
	}
	s.publish(ctx, chatID, events.MessagesRead{ReaderID: userID, ChatID: chatID, Messages: read})
	return read, nil
}

func (s *messageService) DeleteChatMessages(ctx context.Context, chatID int64) error {
	deleted, err := s.messages.DeleteByChat(ctx, chatID)
	if err != nil {
		return common.Internal(err, "failed to delete messages of chat %d", chatID)
	}
	s.logger.InfoContext(ctx, "chat messages deleted", "chat_id", chatID, "count", deleted)
	return nil
}
