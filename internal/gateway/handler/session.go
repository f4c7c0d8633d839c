package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"gochat/internal/config"
)

const maxFrameSize = 64 << 10

// sessionRegistry is what a session needs from the connection registry.
type sessionRegistry interface {
	Refresh(ctx context.Context, userID int64)
}

// session runs the read loop of one socket. Frames from one socket are
// handled in order; a keepalive goroutine pings the client and drops the
// connection once too many pings went unanswered.
type session struct {
	userID   int64
	socket   *wsSocket
	registry sessionRegistry
	commands *Commands
	cfg      config.GatewayConfig
	logger   *slog.Logger

	lastSeen    atomic.Int64
	lastRefresh time.Time
}

func newSession(userID int64, socket *wsSocket, registry sessionRegistry, commands *Commands, cfg config.GatewayConfig, logger *slog.Logger) *session {
	if cfg.KeepaliveInterval <= 0 {
		cfg.KeepaliveInterval = 20 * time.Second
	}
	if cfg.MaxMissedPings <= 0 {
		cfg.MaxMissedPings = 3
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 30 * time.Second
	}
	return &session{
		userID:   userID,
		socket:   socket,
		registry: registry,
		commands: commands,
		cfg:      cfg,
		logger:   logger.With("user_id", userID, "socket_id", socket.ID()),
	}
}

// run blocks until the connection fails, the client goes quiet or ctx is
// cancelled.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	now := time.Now()
	s.lastSeen.Store(now.UnixNano())
	s.lastRefresh = now

	go s.keepalive(ctx)

	conn := s.socket.conn
	conn.SetReadLimit(maxFrameSize)
	for {
		if err := conn.SetReadDeadline(time.Now().Add(s.deadAfter())); err != nil {
			return
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.InfoContext(ctx, "socket read failed", "error", err)
			}
			return
		}
		s.touch(ctx)

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.logger.DebugContext(ctx, "dropping malformed frame", "error", err)
			continue
		}
		if frame.Type == "pong" {
			continue
		}
		if reply := s.commands.Handle(ctx, s.userID, frame); reply != nil {
			if err := s.socket.Send(reply); err != nil {
				return
			}
		}
	}
}

// deadAfter is how long the client may stay silent.
func (s *session) deadAfter() time.Duration {
	return s.cfg.KeepaliveInterval * time.Duration(s.cfg.MaxMissedPings+1)
}

// touch records activity and refreshes presence at most once per refresh
// interval.
func (s *session) touch(ctx context.Context) {
	now := time.Now()
	s.lastSeen.Store(now.UnixNano())
	if now.Sub(s.lastRefresh) < s.cfg.RefreshInterval {
		return
	}
	s.lastRefresh = now
	s.registry.Refresh(ctx, s.userID)
}

func (s *session) keepalive(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			silent := time.Since(time.Unix(0, s.lastSeen.Load()))
			if silent > s.cfg.KeepaliveInterval*time.Duration(s.cfg.MaxMissedPings) {
				s.logger.InfoContext(ctx, "client stopped answering pings", "silent_for", silent)
				_ = s.socket.CloseWith(websocket.CloseGoingAway, "keepalive timeout")
				return
			}
			if err := s.socket.Send(pingFrame); err != nil {
				s.logger.DebugContext(ctx, "ping failed", "error", err)
				return
			}
		}
	}
}
