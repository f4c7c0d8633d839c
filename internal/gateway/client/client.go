// Package client wraps the gRPC clients the gateway uses to reach the
// message and presence services.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"gochat/api/v1/codec"
	msgpb "gochat/api/v1/message"
	presencepb "gochat/api/v1/presence"
	"gochat/internal/common"
)

// Dial opens a plaintext connection that speaks the JSON codec by default.
func Dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codec.Name)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}
	return conn, nil
}

func NewMessageClient(conn grpc.ClientConnInterface) msgpb.MessageServiceClient {
	return msgpb.NewMessageServiceClient(conn)
}

// Presence adapts the presence RPCs to connection.Presence. Every call is
// bounded by timeout and errors come back as common.AppError where the code
// allows it.
type Presence struct {
	rpc     presencepb.PresenceServiceClient
	timeout time.Duration
}

func NewPresence(rpc presencepb.PresenceServiceClient, timeout time.Duration) *Presence {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Presence{rpc: rpc, timeout: timeout}
}

func (p *Presence) SetOnline(ctx context.Context, userID int64, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	_, err := p.rpc.SetOnline(ctx, &presencepb.UserID{ID: userID, TTL: ttlSeconds(ttl)})
	return common.FromStatus(err)
}

func (p *Presence) RefreshOnline(ctx context.Context, userID int64, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	_, err := p.rpc.RefreshOnline(ctx, &presencepb.UserID{ID: userID, TTL: ttlSeconds(ttl)})
	return common.FromStatus(err)
}

func (p *Presence) SetOffline(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	_, err := p.rpc.SetOffline(ctx, &presencepb.UserID{ID: userID})
	return common.FromStatus(err)
}

// Statuses returns "online"/"offline" for each id, in request order.
func (p *Presence) Statuses(ctx context.Context, ids []int64) ([]presencepb.StatusWithID, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	resp, err := p.rpc.GetManyUserStatuses(ctx, &presencepb.UserIDs{IDs: ids})
	if err != nil {
		return nil, common.FromStatus(err)
	}
	return resp.Statuses, nil
}

func ttlSeconds(ttl time.Duration) int32 {
	if ttl <= 0 {
		return 0
	}
	return int32(ttl / time.Second)
}
