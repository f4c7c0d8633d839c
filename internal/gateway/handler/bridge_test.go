package handler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	presencepb "gochat/api/v1/presence"
	"gochat/internal/eventbus"
	"gochat/internal/events"
	"gochat/internal/gateway/handler/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type delivery struct {
	UserID int64
	Frame  Frame
}

type recordingSender struct {
	mu        sync.Mutex
	sent      []delivery
	connected map[int64]bool
	killed    []int64
}

func (s *recordingSender) IsConnected(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected[userID]
}

func (s *recordingSender) Kill(_ context.Context, userID int64, setOffline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if setOffline {
		panic("bridge must not write presence when killing")
	}
	s.killed = append(s.killed, userID)
	delete(s.connected, userID)
}

func (s *recordingSender) SendPersonal(userID int64, payload any) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, delivery{UserID: userID, Frame: payload.(Frame)})
	return 1
}

func (s *recordingSender) Broadcast(userIDs []int64, payload any) int {
	for _, id := range userIDs {
		s.SendPersonal(id, payload)
	}
	return len(userIDs)
}

func TestBridge_Handle(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := events.MessageData{
		ID: "m1", ChatID: 42, Content: "hi",
		Sender:    events.Sender{ID: 1, Username: "alice"},
		CreatedAt: createdAt,
	}

	tests := []struct {
		name     string
		event    events.Event
		expected []delivery
	}{
		{
			name:  "new message goes to members and a receipt to the author",
			event: &events.MessageCreated{Recipients: []int64{1, 2, 3}, SenderID: 1, RequestID: "req-1", Data: data},
			expected: []delivery{
				{2, Frame{EventType: EventNewMessage, Payload: data}},
				{3, Frame{EventType: EventNewMessage, Payload: data}},
				{1, Frame{EventType: EventMessageSent, RequestID: "req-1", Payload: sentMessage{
					ID: "m1", ChatID: 42, Content: "hi", CreatedAt: createdAt,
				}}},
			},
		},
		{
			name: "edit",
			event: &events.MessageUpdated{Recipients: []int64{1, 2}, SenderID: 1, RequestID: "req-2",
				Data: events.UpdatedMessage{ID: "m1", ChatID: 42, Content: "edited"}},
			expected: []delivery{
				{2, Frame{EventType: EventUpdateMessage, Payload: events.UpdatedMessage{ID: "m1", ChatID: 42, Content: "edited"}}},
				{1, Frame{EventType: EventMessageUpdated, RequestID: "req-2", Payload: events.UpdatedMessage{ID: "m1", ChatID: 42, Content: "edited"}}},
			},
		},
		{
			name: "delete",
			event: &events.MessageDeleted{Recipients: []int64{1, 2}, SenderID: 2, RequestID: "req-3",
				Data: events.DeletedMessage{ID: "m1", ChatID: 42}},
			expected: []delivery{
				{1, Frame{EventType: EventDeleteMessage, Payload: events.DeletedMessage{ID: "m1", ChatID: 42}}},
				{2, Frame{EventType: EventMessageDeleted, RequestID: "req-3", Payload: events.DeletedMessage{ID: "m1", ChatID: 42}}},
			},
		},
		{
			name: "read receipts are grouped per author",
			event: &events.MessagesRead{ReaderID: 2, ChatID: 42, Messages: []events.ReadMessage{
				{MessageID: "m1", SenderID: 1}, {MessageID: "m2", SenderID: 3}, {MessageID: "m3", SenderID: 1},
			}},
			expected: []delivery{
				{1, Frame{EventType: EventReadMessages, Payload: []string{"m1", "m3"}}},
				{3, Frame{EventType: EventReadMessages, Payload: []string{"m2"}}},
			},
		},
		{
			name:  "reaction added",
			event: &events.ReactionAdded{Recipients: []int64{1, 2}, MessageID: "m1", ChatID: 42, Author: 2, Reaction: "like"},
			expected: []delivery{
				{1, Frame{EventType: EventReactionAdded, Payload: reactionPayload{MessageID: "m1", ChatID: 42, Author: 2, Reaction: "like"}}},
				{2, Frame{EventType: EventReactionAdded, Payload: reactionPayload{MessageID: "m1", ChatID: 42, Author: 2, Reaction: "like"}}},
			},
		},
		{
			name:  "reaction removed",
			event: &events.ReactionRemoved{Recipients: []int64{1}, MessageID: "m1", ChatID: 42, Author: 2, Reaction: "like"},
			expected: []delivery{
				{1, Frame{EventType: EventReactionRemoved, Payload: reactionPayload{MessageID: "m1", ChatID: 42, Author: 2, Reaction: "like"}}},
			},
		},
		{
			name:  "presence change",
			event: &events.UserStatusChanged{UserID: 7, Status: "offline", Recipients: []int64{1, 2}},
			expected: []delivery{
				{1, Frame{EventType: EventUpdateUserStatus, Payload: userStatusPayload{UserID: 7, Status: "offline"}}},
				{2, Frame{EventType: EventUpdateUserStatus, Payload: userStatusPayload{UserID: 7, Status: "offline"}}},
			},
		},
		{
			name:  "events for other services are ignored",
			event: &events.ChatDeleted{ID: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			bridge := NewBridge(sender, nil, discardLogger())

			assert.NoError(t, bridge.Handle(context.Background(), tt.event))
			assert.Equal(t, tt.expected, sender.sent)
		})
	}
}

type recordingBus struct {
	subscriptions map[string]string
}

func (b *recordingBus) Publish(context.Context, string, events.Event) error { return nil }
func (b *recordingBus) Close() error                                       { return nil }
func (b *recordingBus) Subscribe(topic, group string, _ eventbus.Handler) error {
	b.subscriptions[topic] = group
	return nil
}

func TestBridge_Register(t *testing.T) {
	bus := &recordingBus{subscriptions: map[string]string{}}
	bridge := NewBridge(&recordingSender{}, nil, discardLogger())

	assert.NoError(t, bridge.Register(bus, "api_gateway.abc"))
	assert.Equal(t, map[string]string{
		events.TopicMessage:  "api_gateway.abc",
		events.TopicPresence: "api_gateway.abc",
	}, bus.subscriptions)
}

func TestBridge_OfflineEventDropsLocalSockets(t *testing.T) {
	offline := &events.UserStatusChanged{UserID: 7, Status: "offline", Recipients: []int64{1}}

	tests := []struct {
		name      string
		event     *events.UserStatusChanged
		connected bool
		mockSetup func(m *mocks.MockStatusReader)
		killed    []int64
	}{
		{
			name:      "expired elsewhere while a socket lingers here",
			event:     offline,
			connected: true,
			mockSetup: func(m *mocks.MockStatusReader) {
				m.EXPECT().Statuses(gomock.Any(), []int64{7}).
					Return([]presencepb.StatusWithID{{ID: 7, Status: "offline"}}, nil)
			},
			killed: []int64{7},
		},
		{
			name:      "stale offline after the user reconnected",
			event:     offline,
			connected: true,
			mockSetup: func(m *mocks.MockStatusReader) {
				m.EXPECT().Statuses(gomock.Any(), []int64{7}).
					Return([]presencepb.StatusWithID{{ID: 7, Status: "online"}}, nil)
			},
		},
		{
			name:      "presence lookup fails",
			event:     offline,
			connected: true,
			mockSetup: func(m *mocks.MockStatusReader) {
				m.EXPECT().Statuses(gomock.Any(), []int64{7}).
					Return(nil, status.Error(codes.Unavailable, "down"))
			},
		},
		{
			name:      "user not connected here",
			event:     offline,
			mockSetup: func(m *mocks.MockStatusReader) {},
		},
		{
			name:      "online events never kill",
			event:     &events.UserStatusChanged{UserID: 7, Status: "online", Recipients: []int64{1}},
			connected: true,
			mockSetup: func(m *mocks.MockStatusReader) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			statuses := mocks.NewMockStatusReader(ctrl)
			tt.mockSetup(statuses)

			sender := &recordingSender{connected: map[int64]bool{7: tt.connected}}
			bridge := NewBridge(sender, statuses, discardLogger())

			assert.NoError(t, bridge.Handle(context.Background(), tt.event))
			assert.Equal(t, tt.killed, sender.killed)
			assert.Len(t, sender.sent, 1)
		})
	}
}
