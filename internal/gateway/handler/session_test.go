package handler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gochat/internal/config"
)

type countingRegistry struct {
	refreshes atomic.Int32
}

func (r *countingRegistry) Refresh(context.Context, int64) { r.refreshes.Add(1) }

func TestSession_RefreshIsRateLimited(t *testing.T) {
	registry := &countingRegistry{}
	s := newSession(1, &wsSocket{id: "s1"}, registry, nil, config.GatewayConfig{RefreshInterval: time.Hour}, discardLogger())
	ctx := context.Background()

	s.lastRefresh = time.Now()
	for i := 0; i < 5; i++ {
		s.touch(ctx)
	}
	assert.Equal(t, int32(0), registry.refreshes.Load())

	s.lastRefresh = time.Now().Add(-2 * time.Hour)
	s.touch(ctx)
	s.touch(ctx)
	assert.Equal(t, int32(1), registry.refreshes.Load())
}

func TestSession_Defaults(t *testing.T) {
	s := newSession(1, &wsSocket{id: "s1"}, &countingRegistry{}, nil, config.GatewayConfig{}, discardLogger())

	assert.Equal(t, 20*time.Second, s.cfg.KeepaliveInterval)
	assert.Equal(t, 3, s.cfg.MaxMissedPings)
	assert.Equal(t, 80*time.Second, s.deadAfter())
}
