// Package eventbus carries events.Envelope messages between services over NATS.
package eventbus

import (
	"context"

	"gochat/internal/events"
)

// Handler processes one decoded event. A returned error is logged and the
// consumer moves on to the next message.
type Handler func(ctx context.Context, ev events.Event) error

// Bus publishes events and delivers them to consumer groups. Within a group
// every event is handled by exactly one member.
type Bus interface {
	events.Publisher
	Subscribe(topic, group string, h Handler) error
	Close() error
}
