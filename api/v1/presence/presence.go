// Package presence is the RPC contract of the presence service.
package presence

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gochat/api/v1/codec"
)

const ServiceName = "gochat.v1.PresenceService"

const (
	PresenceService_SetOnline_FullMethodName           = "/" + ServiceName + "/SetOnline"
	PresenceService_SetOffline_FullMethodName          = "/" + ServiceName + "/SetOffline"
	PresenceService_RefreshOnline_FullMethodName       = "/" + ServiceName + "/RefreshOnline"
	PresenceService_GetUserStatus_FullMethodName       = "/" + ServiceName + "/GetUserStatus"
	PresenceService_GetManyUserStatuses_FullMethodName = "/" + ServiceName + "/GetManyUserStatuses"
)

// UserID identifies a user; TTL is in seconds and zero means the server default.
type UserID struct {
	ID  int64 `json:"id"`
	TTL int32 `json:"ttl,omitempty"`
}

type UserStatus struct {
	Status string `json:"status"`
}

type UserIDs struct {
	IDs []int64 `json:"ids"`
}

type StatusWithID struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type UserStatusesResponse struct {
	Statuses []StatusWithID `json:"statuses"`
}

// PresenceServiceServer is the server API for PresenceService.
type PresenceServiceServer interface {
	SetOnline(context.Context, *UserID) (*codec.Empty, error)
	SetOffline(context.Context, *UserID) (*codec.Empty, error)
	RefreshOnline(context.Context, *UserID) (*codec.Empty, error)
	GetUserStatus(context.Context, *UserID) (*UserStatus, error)
	GetManyUserStatuses(context.Context, *UserIDs) (*UserStatusesResponse, error)
}

type UnimplementedPresenceServiceServer struct{}

func (UnimplementedPresenceServiceServer) SetOnline(context.Context, *UserID) (*codec.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOnline not implemented")
}
func (UnimplementedPresenceServiceServer) SetOffline(context.Context, *UserID) (*codec.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOffline not implemented")
}
func (UnimplementedPresenceServiceServer) RefreshOnline(context.Context, *UserID) (*codec.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshOnline not implemented")
}
func (UnimplementedPresenceServiceServer) GetUserStatus(context.Context, *UserID) (*UserStatus, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserStatus not implemented")
}
func (UnimplementedPresenceServiceServer) GetManyUserStatuses(context.Context, *UserIDs) (*UserStatusesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetManyUserStatuses not implemented")
}

var PresenceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PresenceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetOnline", Handler: codec.Unary(PresenceService_SetOnline_FullMethodName, PresenceServiceServer.SetOnline)},
		{MethodName: "SetOffline", Handler: codec.Unary(PresenceService_SetOffline_FullMethodName, PresenceServiceServer.SetOffline)},
		{MethodName: "RefreshOnline", Handler: codec.Unary(PresenceService_RefreshOnline_FullMethodName, PresenceServiceServer.RefreshOnline)},
		{MethodName: "GetUserStatus", Handler: codec.Unary(PresenceService_GetUserStatus_FullMethodName, PresenceServiceServer.GetUserStatus)},
		{MethodName: "GetManyUserStatuses", Handler: codec.Unary(PresenceService_GetManyUserStatuses_FullMethodName, PresenceServiceServer.GetManyUserStatuses)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gochat/v1/presence",
}

func RegisterPresenceServiceServer(s grpc.ServiceRegistrar, srv PresenceServiceServer) {
	s.RegisterService(&PresenceService_ServiceDesc, srv)
}

// PresenceServiceClient is the client API for PresenceService.
type PresenceServiceClient interface {
	SetOnline(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*codec.Empty, error)
	SetOffline(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*codec.Empty, error)
	RefreshOnline(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*codec.Empty, error)
	GetUserStatus(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*UserStatus, error)
	GetManyUserStatuses(ctx context.Context, in *UserIDs, opts ...grpc.CallOption) (*UserStatusesResponse, error)
}

type presenceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPresenceServiceClient(cc grpc.ClientConnInterface) PresenceServiceClient {
	return &presenceServiceClient{cc}
}

func (c *presenceServiceClient) SetOnline(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*codec.Empty, error) {
	return codec.Invoke[codec.Empty](ctx, c.cc, PresenceService_SetOnline_FullMethodName, in, opts...)
}

func (c *presenceServiceClient) SetOffline(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*codec.Empty, error) {
	return codec.Invoke[codec.Empty](ctx, c.cc, PresenceService_SetOffline_FullMethodName, in, opts...)
}

func (c *presenceServiceClient) RefreshOnline(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*codec.Empty, error) {
	return codec.Invoke[codec.Empty](ctx, c.cc, PresenceService_RefreshOnline_FullMethodName, in, opts...)
}

func (c *presenceServiceClient) GetUserStatus(ctx context.Context, in *UserID, opts ...grpc.CallOption) (*UserStatus, error) {
	return codec.Invoke[UserStatus](ctx, c.cc, PresenceService_GetUserStatus_FullMethodName, in, opts...)
}

func (c *presenceServiceClient) GetManyUserStatuses(ctx context.Context, in *UserIDs, opts ...grpc.CallOption) (*UserStatusesResponse, error) {
	return codec.Invoke[UserStatusesResponse](ctx, c.cc, PresenceService_GetManyUserStatuses_FullMethodName, in, opts...)
}
