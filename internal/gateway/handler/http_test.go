package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gochat/api/v1/codec"
	msgpb "gochat/api/v1/message"
	presencepb "gochat/api/v1/presence"
	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/gateway/connection"
	connmocks "gochat/internal/gateway/connection/mocks"
	"gochat/internal/gateway/handler/mocks"
)

const testSecret = "test-secret"

type gatewayFixture struct {
	server    *httptest.Server
	registry  *connection.Registry
	presence  *connmocks.MockPresence
	messages  *mocks.MockMessageServiceClient
	statuses  *mocks.MockStatusReader
	publisher *mocks.MockPublisher
	validator *common.TokenValidator
}

func newGatewayFixture(t *testing.T, cfg config.GatewayConfig) *gatewayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &gatewayFixture{
		presence:  connmocks.NewMockPresence(ctrl),
		messages:  mocks.NewMockMessageServiceClient(ctrl),
		statuses:  mocks.NewMockStatusReader(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		validator: common.NewTokenValidator(testSecret),
	}
	f.registry = connection.NewRegistry(f.presence, time.Minute, discardLogger())
	commands := NewCommands(f.messages, f.publisher, time.Second, discardLogger())
	srv := NewHTTPServer(f.registry, commands, f.messages, f.statuses, f.validator, cfg, discardLogger())

	f.server = httptest.NewServer(srv.Router())
	t.Cleanup(f.server.Close)
	return f
}

func (f *gatewayFixture) token(t *testing.T, userID int64) string {
	t.Helper()
	token, err := f.validator.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

func (f *gatewayFixture) get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	return f.do(t, http.MethodGet, path, token)
}

func (f *gatewayFixture) do(t *testing.T, method, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (f *gatewayFixture) dialWS(t *testing.T, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHTTPServer_Health(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})

	resp := f.get(t, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHTTPServer_RequiresToken(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})

	assert.Equal(t, http.StatusUnauthorized, f.get(t, "/api/v1/chats/42/messages", "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, f.get(t, "/api/v1/chats/42/messages", "garbage").StatusCode)
}

func TestHTTPServer_GetAllMessages(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})
	token := f.token(t, 1)

	f.messages.EXPECT().GetAllMessages(gomock.Any(), &msgpb.GetAllMessagesRequest{ChatID: 42}).
		Return(&msgpb.AllMessages{Messages: []*msgpb.Message{{ID: "m1", ChatID: 42, Content: "hi"}}}, nil)

	resp := f.get(t, "/api/v1/chats/42/messages", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body msgpb.AllMessages
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Messages, 1)
	assert.Equal(t, "m1", body.Messages[0].ID)
}

func TestHTTPServer_ErrorMapping(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})
	token := f.token(t, 2)

	tests := []struct {
		name         string
		method       string
		path         string
		mockSetup    func()
		expectedHTTP int
		expectedCode string
	}{
		{
			name:   "missing message",
			method: http.MethodGet,
			path:   "/api/v1/messages/m9",
			mockSetup: func() {
				f.messages.EXPECT().GetMessageData(gomock.Any(), &msgpb.GetMessageDataRequest{MessageID: "m9"}).
					Return(nil, status.Error(codes.NotFound, "message m9 not found"))
			},
			expectedHTTP: http.StatusNotFound,
			expectedCode: "NOT_FOUND",
		},
		{
			name:   "duplicate reaction",
			method: http.MethodPost,
			path:   "/api/v1/messages/m1/reactions/like",
			mockSetup: func() {
				f.messages.EXPECT().AddReaction(gomock.Any(), &msgpb.ReactionRequest{MessageID: "m1", Reaction: "like", Author: 2}).
					Return(nil, status.Error(codes.AlreadyExists, "reaction already added"))
			},
			expectedHTTP: http.StatusConflict,
			expectedCode: "ALREADY_EXISTS",
		},
		{
			name:   "message service down",
			method: http.MethodGet,
			path:   "/api/v1/chats/42/messages",
			mockSetup: func() {
				f.messages.EXPECT().GetAllMessages(gomock.Any(), gomock.Any()).
					Return(nil, status.Error(codes.Unavailable, "connection refused"))
			},
			expectedHTTP: http.StatusServiceUnavailable,
			expectedCode: "UNAVAILABLE",
		},
		{
			name:         "bad presence ids",
			method:       http.MethodGet,
			path:         "/api/v1/presence?ids=1,x",
			mockSetup:    func() {},
			expectedHTTP: http.StatusBadRequest,
			expectedCode: "INVALID_ARGUMENT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp := f.do(t, tt.method, tt.path, token)
			assert.Equal(t, tt.expectedHTTP, resp.StatusCode)

			var body ErrorPayload
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body.Code)
		})
	}
}

func TestHTTPServer_Reactions(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})
	token := f.token(t, 2)

	f.messages.EXPECT().AddReaction(gomock.Any(), &msgpb.ReactionRequest{MessageID: "m1", Reaction: "like", Author: 2}).
		Return(&codec.Empty{}, nil)
	f.messages.EXPECT().RemoveReaction(gomock.Any(), &msgpb.ReactionRequest{MessageID: "m1", Reaction: "like", Author: 2}).
		Return(&codec.Empty{}, nil)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPost, "/api/v1/messages/m1/reactions/like", token).StatusCode)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/v1/messages/m1/reactions/like", token).StatusCode)
}

func TestHTTPServer_Presence(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})
	token := f.token(t, 1)

	f.statuses.EXPECT().Statuses(gomock.Any(), []int64{2, 3}).Return([]presencepb.StatusWithID{
		{ID: 2, Status: "online"}, {ID: 3, Status: "offline"},
	}, nil)

	resp := f.get(t, "/api/v1/presence?ids=2,3", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Statuses []presencepb.StatusWithID `json:"statuses"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []presencepb.StatusWithID{{ID: 2, Status: "online"}, {ID: 3, Status: "offline"}}, body.Statuses)
}

func TestHTTPServer_WebSocketRejectsBadToken(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{})

	conn := f.dialWS(t, "not-a-token")
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code)
}

func TestHTTPServer_WebSocketSession(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{KeepaliveInterval: time.Minute, MaxMissedPings: 3})

	offline := make(chan struct{})
	f.presence.EXPECT().SetOnline(gomock.Any(), int64(1), time.Minute).Return(nil)
	f.presence.EXPECT().SetOffline(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) error {
		close(offline)
		return nil
	})
	f.messages.EXPECT().SendMessage(gomock.Any(), &msgpb.SendMessageRequest{
		ChatID: 42, UserID: 1, Content: "hi", RequestID: "req-1",
	}).Return(nil, status.Error(codes.InvalidArgument, "invalid message: not a member"))

	conn := f.dialWS(t, f.token(t, 1))
	require.Eventually(t, func() bool { return f.registry.IsConnected(1) }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "pong"}))
	require.NoError(t, conn.WriteJSON(map[string]any{
		"event_type": CommandSendMessage,
		"payload":    map[string]any{"chat_id": 42, "content": "hi"},
		"request_id": "req-1",
	}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply struct {
		EventType string       `json:"event_type"`
		Payload   ErrorPayload `json:"payload"`
		RequestID string       `json:"request_id"`
	}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, EventError, reply.EventType)
	assert.Equal(t, "req-1", reply.RequestID)
	assert.Equal(t, ErrorPayload{Code: "INVALID_ARGUMENT", Details: "invalid message: not a member"}, reply.Payload)

	// frames pushed through the registry reach the socket
	assert.Equal(t, 1, f.registry.SendPersonal(1, Frame{EventType: EventReadMessages, Payload: []string{"m1"}}))
	var pushed Frame
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, EventReadMessages, pushed.EventType)

	require.NoError(t, conn.Close())
	select {
	case <-offline:
	case <-time.After(2 * time.Second):
		t.Fatal("user was not marked offline")
	}
	assert.False(t, f.registry.IsConnected(1))
}

func TestHTTPServer_WebSocketKeepalive(t *testing.T) {
	f := newGatewayFixture(t, config.GatewayConfig{KeepaliveInterval: 30 * time.Millisecond, MaxMissedPings: 2})

	offline := make(chan struct{})
	f.presence.EXPECT().SetOnline(gomock.Any(), int64(5), time.Minute).Return(nil)
	f.presence.EXPECT().SetOffline(gomock.Any(), int64(5)).DoAndReturn(func(context.Context, int64) error {
		close(offline)
		return nil
	})

	conn := f.dialWS(t, f.token(t, 5))
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var ping map[string]string
	require.NoError(t, conn.ReadJSON(&ping))
	assert.Equal(t, "ping", ping["type"])

	// never answer: the gateway gives up on the socket
	select {
	case <-offline:
	case <-time.After(2 * time.Second):
		t.Fatal("silent socket was not dropped")
	}
}
