// Package connection tracks the live WebSocket connections of every user on
// this gateway and drives presence transitions from them.
package connection

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrUserCleaning is returned by Connect while the user's previous sockets
// are still being torn down. The caller should close the new socket.
var ErrUserCleaning = errors.New("user connections are being cleaned up")

// Socket is one client connection.
type Socket interface {
	ID() string
	Send(v any) error
	Close() error
}

// Presence is the part of the presence service the registry reports to.
type Presence interface {
	SetOnline(ctx context.Context, userID int64, ttl time.Duration) error
	RefreshOnline(ctx context.Context, userID int64, ttl time.Duration) error
	SetOffline(ctx context.Context, userID int64) error
}

// Registry owns the userID -> sockets map. All state is guarded by mu and is
// only reachable through methods.
type Registry struct {
	mu       sync.Mutex
	sockets  map[int64]map[string]Socket
	cleaning map[int64]struct{}

	presence Presence
	ttl      time.Duration
	logger   *slog.Logger
}

func NewRegistry(presence Presence, ttl time.Duration, logger *slog.Logger) *Registry {
	return &Registry{
		sockets:  make(map[int64]map[string]Socket),
		cleaning: make(map[int64]struct{}),
		presence: presence,
		ttl:      ttl,
		logger:   logger.With("component", "connection_registry"),
	}
}

// Connect registers socket for userID. The first socket of a user marks them
// online, later ones only refresh the TTL.
func (r *Registry) Connect(ctx context.Context, userID int64, socket Socket) error {
	r.mu.Lock()
	if _, busy := r.cleaning[userID]; busy {
		r.mu.Unlock()
		return ErrUserCleaning
	}
	set, ok := r.sockets[userID]
	if !ok {
		set = make(map[string]Socket)
		r.sockets[userID] = set
	}
	set[socket.ID()] = socket
	first := len(set) == 1
	users := len(r.sockets)
	r.mu.Unlock()

	connectedUsers.Set(float64(users))
	r.logger.InfoContext(ctx, "socket connected", "user_id", userID, "socket_id", socket.ID(), "first", first)

	// The presence call runs unlocked. If this socket disconnects before
	// SetOnline lands, SetOffline can win and leave an online key with no
	// sockets behind; it expires after ttl and the expiry listener
	// publishes the offline transition.
	var err error
	if first {
		err = r.presence.SetOnline(ctx, userID, r.ttl)
	} else {
		err = r.presence.RefreshOnline(ctx, userID, r.ttl)
	}
	if err != nil {
		r.logger.WarnContext(ctx, "presence update failed", "user_id", userID, "error", err)
	}
	return nil
}

// Disconnect drops socket. When it was the user's last one the user is
// cleaned up and marked offline.
func (r *Registry) Disconnect(ctx context.Context, userID int64, socket Socket) {
	r.mu.Lock()
	set, ok := r.sockets[userID]
	if !ok {
		r.mu.Unlock()
		return
	}
	if _, ok := set[socket.ID()]; !ok {
		r.mu.Unlock()
		return
	}
	delete(set, socket.ID())
	if remaining := len(set); remaining > 0 {
		r.mu.Unlock()
		r.logger.InfoContext(ctx, "socket disconnected", "user_id", userID, "socket_id", socket.ID(), "remaining", remaining)
		return
	}
	detached, claimed := r.claimLocked(userID)
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "last socket disconnected", "user_id", userID, "socket_id", socket.ID())
	if claimed {
		r.release(ctx, userID, detached, true)
	}
}

// Kill closes every socket of userID. Only one Kill per user runs at a time;
// concurrent calls return immediately. Killing a user with no sockets is a
// no-op.
func (r *Registry) Kill(ctx context.Context, userID int64, setOffline bool) {
	r.mu.Lock()
	if _, busy := r.cleaning[userID]; busy {
		r.mu.Unlock()
		return
	}
	if _, ok := r.sockets[userID]; !ok {
		r.mu.Unlock()
		return
	}
	detached, claimed := r.claimLocked(userID)
	r.mu.Unlock()

	if claimed {
		r.release(ctx, userID, detached, setOffline)
	}
}

// claimLocked marks userID as cleaning and detaches its sockets. r.mu must be
// held.
func (r *Registry) claimLocked(userID int64) ([]Socket, bool) {
	if _, busy := r.cleaning[userID]; busy {
		return nil, false
	}
	r.cleaning[userID] = struct{}{}

	set := r.sockets[userID]
	delete(r.sockets, userID)
	connectedUsers.Set(float64(len(r.sockets)))

	detached := make([]Socket, 0, len(set))
	for _, s := range set {
		detached = append(detached, s)
	}
	return detached, true
}

func (r *Registry) release(ctx context.Context, userID int64, detached []Socket, setOffline bool) {
	for _, s := range detached {
		if err := s.Close(); err != nil {
			r.logger.DebugContext(ctx, "socket close failed", "user_id", userID, "socket_id", s.ID(), "error", err)
		}
	}
	if setOffline {
		if err := r.presence.SetOffline(ctx, userID); err != nil {
			r.logger.WarnContext(ctx, "presence update failed", "user_id", userID, "error", err)
		}
	}

	r.mu.Lock()
	delete(r.cleaning, userID)
	r.mu.Unlock()
}

// Refresh extends the user's presence TTL if they are still connected.
func (r *Registry) Refresh(ctx context.Context, userID int64) {
	if !r.IsConnected(userID) {
		return
	}
	if err := r.presence.RefreshOnline(ctx, userID, r.ttl); err != nil {
		r.logger.WarnContext(ctx, "presence refresh failed", "user_id", userID, "error", err)
	}
}

// SendPersonal writes payload to every socket of userID and returns how many
// writes succeeded. Failed writes are logged and dropped.
func (r *Registry) SendPersonal(userID int64, payload any) int {
	sent := 0
	for _, s := range r.Sockets(userID) {
		if err := s.Send(payload); err != nil {
			framesSent.WithLabelValues("error").Inc()
			r.logger.Warn("send failed", "user_id", userID, "socket_id", s.ID(), "error", err)
			continue
		}
		framesSent.WithLabelValues("ok").Inc()
		sent++
	}
	return sent
}

// Broadcast is SendPersonal for each of userIDs.
func (r *Registry) Broadcast(userIDs []int64, payload any) int {
	sent := 0
	for _, id := range userIDs {
		sent += r.SendPersonal(id, payload)
	}
	return sent
}

func (r *Registry) IsConnected(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sockets[userID]) > 0
}

// Count returns the number of connected users.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sockets)
}

// Sockets returns a snapshot of the user's sockets.
func (r *Registry) Sockets(userID int64) []Socket {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.sockets[userID]
	out := make([]Socket, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	return out
}

// Shutdown kills every connected user and marks them offline.
func (r *Registry) Shutdown(ctx context.Context) {
	r.mu.Lock()
	users := make([]int64, 0, len(r.sockets))
	for id := range r.sockets {
		users = append(users, id)
	}
	r.mu.Unlock()

	for _, id := range users {
		r.Kill(ctx, id, true)
	}
}
