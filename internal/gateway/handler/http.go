package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"gochat/api/v1/codec"
	msgpb "gochat/api/v1/message"
	presencepb "gochat/api/v1/presence"
	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/gateway/connection"
)

// StatusReader answers presence lookups for the REST API.
type StatusReader interface {
	Statuses(ctx context.Context, ids []int64) ([]presencepb.StatusWithID, error)
}

type HTTPServer struct {
	registry  *connection.Registry
	commands  *Commands
	messages  msgpb.MessageServiceClient
	presence  StatusReader
	validator *common.TokenValidator
	upgrader  websocket.Upgrader
	cfg       config.GatewayConfig
	logger    *slog.Logger
}

func NewHTTPServer(
	registry *connection.Registry,
	commands *Commands,
	messages msgpb.MessageServiceClient,
	presence StatusReader,
	validator *common.TokenValidator,
	cfg config.GatewayConfig,
	logger *slog.Logger,
) *HTTPServer {
	return &HTTPServer{
		registry:  registry,
		commands:  commands,
		messages:  messages,
		presence:  presence,
		validator: validator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		cfg:    cfg,
		logger: logger.With("component", "gateway_http"),
	}
}

// Router builds the gateway's HTTP surface.
func (s *HTTPServer) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ws", s.serveWS).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/health", s.health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(mux.MiddlewareFunc(common.AuthMiddleware(s.validator)))
	api.HandleFunc("/chats/{chatID:[0-9]+}/messages", s.getAllMessages).Methods(http.MethodGet)
	api.HandleFunc("/messages/{messageID}", s.getMessage).Methods(http.MethodGet)
	api.HandleFunc("/messages/{messageID}/reactions/{reaction}", s.addReaction).Methods(http.MethodPost)
	api.HandleFunc("/messages/{messageID}/reactions/{reaction}", s.removeReaction).Methods(http.MethodDelete)
	api.HandleFunc("/presence", s.getPresence).Methods(http.MethodGet)

	return router
}

func (s *HTTPServer) serveWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token, _ = common.BearerToken(r.Header.Get("Authorization"))
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	socket := newWSSocket(conn, s.cfg.WriteTimeout)

	userID, err := s.validator.Validate(token)
	if err != nil {
		_ = socket.CloseWith(websocket.ClosePolicyViolation, "invalid token")
		return
	}

	// presence transitions must finish even if the request context is gone
	ctx := context.WithoutCancel(r.Context())
	if err := s.registry.Connect(ctx, userID, socket); err != nil {
		s.logger.Warn("rejecting socket", "user_id", userID, "error", err)
		_ = socket.CloseWith(websocket.CloseInternalServerErr, "try again")
		return
	}
	defer func() {
		s.registry.Disconnect(ctx, userID, socket)
		_ = socket.Close()
	}()

	newSession(userID, socket, s.registry, s.commands, s.cfg, s.logger).run(r.Context())
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"connected_users": s.registry.Count(),
	})
}

func (s *HTTPServer) getAllMessages(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(mux.Vars(r)["chatID"], 10, 64)
	if err != nil {
		s.writeError(w, common.Validation("chat id must be a number"))
		return
	}
	ctx, cancel := s.rpcContext(r)
	defer cancel()

	resp, err := s.messages.GetAllMessages(ctx, &msgpb.GetAllMessagesRequest{ChatID: chatID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *HTTPServer) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.rpcContext(r)
	defer cancel()

	resp, err := s.messages.GetMessageData(ctx, &msgpb.GetMessageDataRequest{MessageID: mux.Vars(r)["messageID"]})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *HTTPServer) addReaction(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, s.messages.AddReaction)
}

func (s *HTTPServer) removeReaction(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, s.messages.RemoveReaction)
}

func (s *HTTPServer) react(w http.ResponseWriter, r *http.Request, call func(context.Context, *msgpb.ReactionRequest, ...grpc.CallOption) (*codec.Empty, error)) {
	userID, _ := common.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	ctx, cancel := s.rpcContext(r)
	defer cancel()

	_, err := call(ctx, &msgpb.ReactionRequest{MessageID: vars["messageID"], Reaction: vars["reaction"], Author: userID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getPresence(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	ctx, cancel := s.rpcContext(r)
	defer cancel()

	statuses, err := s.presence.Statuses(ctx, ids)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"statuses": statuses})
}

func (s *HTTPServer) rpcContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := s.cfg.RPCTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (s *HTTPServer) writeError(w http.ResponseWriter, err error) {
	code := common.GRPCCode(err)
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, common.HTTPStatus(code), ErrorPayload{
		Code:    common.ErrorCodeName(code),
		Details: errorDetails(err),
	})
}

func parseIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, common.Validation("ids is required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, common.Validation("invalid user id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
