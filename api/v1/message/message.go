// Package message is the RPC contract of the message service.
package message

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gochat/api/v1/codec"
)

const ServiceName = "gochat.v1.MessageService"

const (
	MessageService_SendMessage_FullMethodName    = "/" + ServiceName + "/SendMessage"
	MessageService_UpdateMessage_FullMethodName  = "/" + ServiceName + "/UpdateMessage"
	MessageService_DeleteMessage_FullMethodName  = "/" + ServiceName + "/DeleteMessage"
	MessageService_GetAllMessages_FullMethodName = "/" + ServiceName + "/GetAllMessages"
	MessageService_GetMessageData_FullMethodName = "/" + ServiceName + "/GetMessageData"
	MessageService_AddReaction_FullMethodName    = "/" + ServiceName + "/AddReaction"
	MessageService_RemoveReaction_FullMethodName = "/" + ServiceName + "/RemoveReaction"
	MessageService_MarkAsRead_FullMethodName     = "/" + ServiceName + "/MarkAsRead"
)

type SendMessageRequest struct {
	ChatID      int64  `json:"chat_id"`
	UserID      int64  `json:"user_id"`
	Content     string `json:"content"`
	RequestID   string `json:"request_id,omitempty"`
	ReplyTo     string `json:"reply_to,omitempty"`
	ForwardFrom string `json:"forward_from,omitempty"`
}

type SendMessageResponse struct {
	MessageID string    `json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateMessageRequest struct {
	MessageID  string `json:"message_id"`
	SenderID   int64  `json:"sender_id"`
	NewContent string `json:"new_content"`
	RequestID  string `json:"request_id,omitempty"`
}

type DeleteMessageRequest struct {
	MessageID string `json:"message_id"`
	SenderID  int64  `json:"sender_id"`
	RequestID string `json:"request_id,omitempty"`
}

type MessageID struct {
	MessageID string `json:"message_id"`
}

type DeleteMessageResponse struct {
	Status string `json:"status"`
}

type GetAllMessagesRequest struct {
	ChatID int64 `json:"chat_id"`
}

type GetMessageDataRequest struct {
	MessageID string `json:"message_id"`
}

type ReactionRequest struct {
	MessageID string `json:"message_id"`
	Reaction  string `json:"reaction"`
	Author    int64  `json:"author"`
}

type MarkAsReadRequest struct {
	ChatID            int64  `json:"chat_id"`
	UserID            int64  `json:"user_id"`
	LastReadMessageID string `json:"last_read_message_id"`
}

type MarkAsReadResponse struct {
	Marked []ReadMessage `json:"marked"`
}

type ReadMessage struct {
	MessageID string `json:"message_id"`
	SenderID  int64  `json:"sender_id"`
}

type SenderData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type ReplyData struct {
	MessageID string `json:"message_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Preview   string `json:"preview"`
}

type ForwardData struct {
	MessageID string `json:"message_id"`
	ChatID    int64  `json:"chat_id"`
	UserID    int64  `json:"user_id"`
}

type Metadata struct {
	IsEdited    bool               `json:"is_edited"`
	IsPinned    bool               `json:"is_pinned"`
	Reactions   map[string][]int64 `json:"reactions"`
	ReplyTo     *ReplyData         `json:"reply_to,omitempty"`
	ForwardFrom *ForwardData       `json:"forward_from,omitempty"`
}

type Message struct {
	ID        string     `json:"id"`
	ChatID    int64      `json:"chat_id"`
	Sender    SenderData `json:"sender"`
	Content   string     `json:"content"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	Metadata  Metadata   `json:"metadata"`
}

type AllMessages struct {
	Messages []*Message `json:"messages"`
}

type ReadBy struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}

type FullMessageData struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	Metadata  Metadata  `json:"metadata"`
	ReadBy    []ReadBy  `json:"read_by"`
}

// MessageServiceServer is the server API for MessageService.
type MessageServiceServer interface {
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	UpdateMessage(context.Context, *UpdateMessageRequest) (*MessageID, error)
	DeleteMessage(context.Context, *DeleteMessageRequest) (*DeleteMessageResponse, error)
	GetAllMessages(context.Context, *GetAllMessagesRequest) (*AllMessages, error)
	GetMessageData(context.Context, *GetMessageDataRequest) (*FullMessageData, error)
	AddReaction(context.Context, *ReactionRequest) (*codec.Empty, error)
	RemoveReaction(context.Context, *ReactionRequest) (*codec.Empty, error)
	MarkAsRead(context.Context, *MarkAsReadRequest) (*MarkAsReadResponse, error)
}

// UnimplementedMessageServiceServer can be embedded to stay forward compatible.
type UnimplementedMessageServiceServer struct{}

func (UnimplementedMessageServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedMessageServiceServer) UpdateMessage(context.Context, *UpdateMessageRequest) (*MessageID, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateMessage not implemented")
}
func (UnimplementedMessageServiceServer) DeleteMessage(context.Context, *DeleteMessageRequest) (*DeleteMessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMessage not implemented")
}
func (UnimplementedMessageServiceServer) GetAllMessages(context.Context, *GetAllMessagesRequest) (*AllMessages, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAllMessages not implemented")
}
func (UnimplementedMessageServiceServer) GetMessageData(context.Context, *GetMessageDataRequest) (*FullMessageData, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMessageData not implemented")
}
func (UnimplementedMessageServiceServer) AddReaction(context.Context, *ReactionRequest) (*codec.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AddReaction not implemented")
}
func (UnimplementedMessageServiceServer) RemoveReaction(context.Context, *ReactionRequest) (*codec.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveReaction not implemented")
}
func (UnimplementedMessageServiceServer) MarkAsRead(context.Context, *MarkAsReadRequest) (*MarkAsReadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkAsRead not implemented")
}

var MessageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SendMessage", Handler: codec.Unary(MessageService_SendMessage_FullMethodName, MessageServiceServer.SendMessage)},
		{MethodName: "UpdateMessage", Handler: codec.Unary(MessageService_UpdateMessage_FullMethodName, MessageServiceServer.UpdateMessage)},
		{MethodName: "DeleteMessage", Handler: codec.Unary(MessageService_DeleteMessage_FullMethodName, MessageServiceServer.DeleteMessage)},
		{MethodName: "GetAllMessages", Handler: codec.Unary(MessageService_GetAllMessages_FullMethodName, MessageServiceServer.GetAllMessages)},
		{MethodName: "GetMessageData", Handler: codec.Unary(MessageService_GetMessageData_FullMethodName, MessageServiceServer.GetMessageData)},
		{MethodName: "AddReaction", Handler: codec.Unary(MessageService_AddReaction_FullMethodName, MessageServiceServer.AddReaction)},
		{MethodName: "RemoveReaction", Handler: codec.Unary(MessageService_RemoveReaction_FullMethodName, MessageServiceServer.RemoveReaction)},
		{MethodName: "MarkAsRead", Handler: codec.Unary(MessageService_MarkAsRead_FullMethodName, MessageServiceServer.MarkAsRead)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gochat/v1/message",
}

func RegisterMessageServiceServer(s grpc.ServiceRegistrar, srv MessageServiceServer) {
	s.RegisterService(&MessageService_ServiceDesc, srv)
}

// MessageServiceClient is the client API for MessageService.
type MessageServiceClient interface {
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	UpdateMessage(ctx context.Context, in *UpdateMessageRequest, opts ...grpc.CallOption) (*MessageID, error)
	DeleteMessage(ctx context.Context, in *DeleteMessageRequest, opts ...grpc.CallOption) (*DeleteMessageResponse, error)
	GetAllMessages(ctx context.Context, in *GetAllMessagesRequest, opts ...grpc.CallOption) (*AllMessages, error)
	GetMessageData(ctx context.Context, in *GetMessageDataRequest, opts ...grpc.CallOption) (*FullMessageData, error)
	AddReaction(ctx context.Context, in *ReactionRequest, opts ...grpc.CallOption) (*codec.Empty, error)
	RemoveReaction(ctx context.Context, in *ReactionRequest, opts ...grpc.CallOption) (*codec.Empty, error)
	MarkAsRead(ctx context.Context, in *MarkAsReadRequest, opts ...grpc.CallOption) (*MarkAsReadResponse, error)
}

type messageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMessageServiceClient(cc grpc.ClientConnInterface) MessageServiceClient {
	return &messageServiceClient{cc}
}

func (c *messageServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return codec.Invoke[SendMessageResponse](ctx, c.cc, MessageService_SendMessage_FullMethodName, in, opts...)
}

func (c *messageServiceClient) UpdateMessage(ctx context.Context, in *UpdateMessageRequest, opts ...grpc.CallOption) (*MessageID, error) {
	return codec.Invoke[MessageID](ctx, c.cc, MessageService_UpdateMessage_FullMethodName, in, opts...)
}

func (c *messageServiceClient) DeleteMessage(ctx context.Context, in *DeleteMessageRequest, opts ...grpc.CallOption) (*DeleteMessageResponse, error) {
	return codec.Invoke[DeleteMessageResponse](ctx, c.cc, MessageService_DeleteMessage_FullMethodName, in, opts...)
}

func (c *messageServiceClient) GetAllMessages(ctx context.Context, in *GetAllMessagesRequest, opts ...grpc.CallOption) (*AllMessages, error) {
	return codec.Invoke[AllMessages](ctx, c.cc, MessageService_GetAllMessages_FullMethodName, in, opts...)
}

func (c *messageServiceClient) GetMessageData(ctx context.Context, in *GetMessageDataRequest, opts ...grpc.CallOption) (*FullMessageData, error) {
	return codec.Invoke[FullMessageData](ctx, c.cc, MessageService_GetMessageData_FullMethodName, in, opts...)
}

func (c *messageServiceClient) AddReaction(ctx context.Context, in *ReactionRequest, opts ...grpc.CallOption) (*codec.Empty, error) {
	return codec.Invoke[codec.Empty](ctx, c.cc, MessageService_AddReaction_FullMethodName, in, opts...)
}

func (c *messageServiceClient) RemoveReaction(ctx context.Context, in *ReactionRequest, opts ...grpc.CallOption) (*codec.Empty, error) {
	return codec.Invoke[codec.Empty](ctx, c.cc, MessageService_RemoveReaction_FullMethodName, in, opts...)
}

func (c *messageServiceClient) MarkAsRead(ctx context.Context, in *MarkAsReadRequest, opts ...grpc.CallOption) (*MarkAsReadResponse, error) {
	return codec.Invoke[MarkAsReadResponse](ctx, c.cc, MessageService_MarkAsRead_FullMethodName, in, opts...)
}
