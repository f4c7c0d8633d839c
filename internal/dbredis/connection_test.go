package dbredis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gochat/internal/config"
)

func TestExpiredChannel(t *testing.T) {
	assert.Equal(t, "__keyevent@0__:expired", ExpiredChannel(0))
	assert.Equal(t, "__keyevent@3__:expired", ExpiredChannel(3))
}

func TestHasFlags(t *testing.T) {
	assert.True(t, hasFlags("Ex", 'E', 'x'))
	assert.True(t, hasFlags("KEA", 'E', 'A'))
	assert.False(t, hasFlags("", 'E', 'x'))
	assert.False(t, hasFlags("Kx", 'E', 'x'))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.Config{Redis: config.RedisConfig{Addr: mr.Addr()}})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(&config.Config{Redis: config.RedisConfig{Addr: addr}})
	assert.Error(t, err)
}
