package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/nats-io/nats.go"

	"gochat/internal/config"
	"gochat/internal/events"
)

// KeyHeader carries the partition key of a published event.
const KeyHeader = "Gochat-Key"

var ErrClosed = errors.New("event bus closed")

// NATSBus maps topics to NATS subjects and consumer groups to queue groups.
// Each subscription fans messages out to a fixed set of workers; messages
// with the same key always land on the same worker, so per-key order is
// kept inside a process.
type NATSBus struct {
	conn       *nats.Conn
	ownsConn   bool
	prefix     string
	workers    int
	bufferSize int
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	stop   chan struct{}
	wg     sync.WaitGroup

	mu     sync.Mutex
	subs   []*nats.Subscription
	closed bool
}

// NewNATSBus dials the configured NATS server.
func NewNATSBus(cfg config.NATSConfig, logger *slog.Logger) (*NATSBus, error) {
	opts := []nats.Option{
		nats.Name("gochat"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			logger.Error("nats async error", "subject", subject, "error", err)
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.URL, err)
	}

	bus := NewNATSBusWithConn(conn, cfg, logger)
	bus.ownsConn = true
	return bus, nil
}

// NewNATSBusWithConn wraps an existing connection. Close leaves the
// connection open.
func NewNATSBusWithConn(conn *nats.Conn, cfg config.NATSConfig, logger *slog.Logger) *NATSBus {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 64
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &NATSBus{
		conn:       conn,
		prefix:     cfg.SubjectPrefix,
		workers:    workers,
		bufferSize: bufferSize,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		stop:       make(chan struct{}),
	}
}

func (b *NATSBus) subject(topic string) string {
	if b.prefix == "" {
		return topic
	}
	return b.prefix + "." + topic
}

func (b *NATSBus) Publish(ctx context.Context, key string, ev events.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := events.Encode(ev)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(b.subject(ev.Topic()))
	msg.Header.Set(KeyHeader, key)
	msg.Data = data

	if err := b.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", ev.EventType(), err)
	}
	b.logger.Debug("event published", "topic", ev.Topic(), "event_type", ev.EventType(), "key", key)
	return nil
}

func (b *NATSBus) Subscribe(topic, group string, h Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}

	queues := make([]chan *nats.Msg, b.workers)
	for i := range queues {
		queues[i] = make(chan *nats.Msg, b.bufferSize)
		b.wg.Add(1)
		go b.work(topic, queues[i], h)
	}

	sub, err := b.conn.QueueSubscribe(b.subject(topic), group, func(msg *nats.Msg) {
		q := queues[partition(msg.Header.Get(KeyHeader), len(queues))]
		select {
		case q <- msg:
		case <-b.stop:
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	b.subs = append(b.subs, sub)
	b.logger.Info("subscribed", "topic", topic, "group", group, "workers", b.workers)
	return nil
}

func (b *NATSBus) work(topic string, queue <-chan *nats.Msg, h Handler) {
	defer b.wg.Done()
	for {
		select {
		case msg := <-queue:
			b.handle(topic, msg, h)
		case <-b.stop:
			return
		}
	}
}

func (b *NATSBus) handle(topic string, msg *nats.Msg, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "topic", topic, "panic", r)
		}
	}()

	ev, err := events.Decode(msg.Data)
	if err != nil {
		b.logger.Warn("dropping undecodable event", "topic", topic, "error", err)
		return
	}
	if err := h(b.ctx, ev); err != nil {
		b.logger.Error("event handler failed", "topic", topic, "event_type", ev.EventType(), "error", err)
	}
}

// Close unsubscribes, lets workers finish the message they hold and closes
// the connection when the bus dialed it.
func (b *NATSBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			errs = append(errs, err)
		}
	}
	close(b.stop)
	b.wg.Wait()
	b.cancel()

	if b.ownsConn {
		if err := b.conn.Drain(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func partition(key string, n int) int {
	if n <= 1 || key == "" {
		return 0
	}
	return int(xxhash.Sum64String(key) % uint64(n))
}
