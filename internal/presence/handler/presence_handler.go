// Package handler exposes the presence service over gRPC and keeps its
// membership replica in sync with chat and user events.
package handler

import (
	"context"
	"time"

	"gochat/api/v1/codec"
	pb "gochat/api/v1/presence"
	"gochat/internal/presence/service"
)

type PresenceHandler struct {
	pb.UnimplementedPresenceServiceServer
	presenceService service.PresenceService
}

func NewPresenceHandler(presenceService service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceService: presenceService}
}

// ttlOf converts the wire TTL; zero leaves the choice to the service.
func ttlOf(in *pb.UserID) time.Duration {
	if in.TTL <= 0 {
		return 0
	}
	return time.Duration(in.TTL) * time.Second
}

func (h *PresenceHandler) SetOnline(ctx context.Context, in *pb.UserID) (*codec.Empty, error) {
	if err := h.presenceService.SetOnline(ctx, in.ID, ttlOf(in)); err != nil {
		return nil, err
	}
	return &codec.Empty{}, nil
}

func (h *PresenceHandler) SetOffline(ctx context.Context, in *pb.UserID) (*codec.Empty, error) {
	if err := h.presenceService.SetOffline(ctx, in.ID); err != nil {
		return nil, err
	}
	return &codec.Empty{}, nil
}

func (h *PresenceHandler) RefreshOnline(ctx context.Context, in *pb.UserID) (*codec.Empty, error) {
	if err := h.presenceService.RefreshOnline(ctx, in.ID, ttlOf(in)); err != nil {
		return nil, err
	}
	return &codec.Empty{}, nil
}

func (h *PresenceHandler) GetUserStatus(ctx context.Context, in *pb.UserID) (*pb.UserStatus, error) {
	status, err := h.presenceService.GetStatus(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return &pb.UserStatus{Status: string(status)}, nil
}

func (h *PresenceHandler) GetManyUserStatuses(ctx context.Context, in *pb.UserIDs) (*pb.UserStatusesResponse, error) {
	statuses, err := h.presenceService.GetStatuses(ctx, in.IDs)
	if err != nil {
		return nil, err
	}

	resp := &pb.UserStatusesResponse{Statuses: make([]pb.StatusWithID, 0, len(in.IDs))}
	for _, id := range in.IDs {
		resp.Statuses = append(resp.Statuses, pb.StatusWithID{ID: id, Status: string(statuses[id])})
	}
	return resp, nil
}
