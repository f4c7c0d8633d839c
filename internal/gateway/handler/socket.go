package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// wsSocket is a connection.Socket backed by a gorilla/websocket conn. Writes
// are serialized; Close may be called from any goroutine.
type wsSocket struct {
	id           string
	conn         *websocket.Conn
	writeTimeout time.Duration

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newWSSocket(conn *websocket.Conn, writeTimeout time.Duration) *wsSocket {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &wsSocket{id: uuid.NewString(), conn: conn, writeTimeout: writeTimeout}
}

func (s *wsSocket) ID() string { return s.id }

func (s *wsSocket) Send(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

func (s *wsSocket) Close() error {
	return s.CloseWith(websocket.CloseNormalClosure, "")
}

// CloseWith sends a close frame with code and closes the connection. Only
// the first call has an effect.
func (s *wsSocket) CloseWith(code int, reason string) error {
	var err error
	s.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(code, reason)
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		err = s.conn.Close()
	})
	return err
}
