// Package handler exposes the message service over gRPC and applies the
// events it consumes from other services.
package handler

import (
	"context"

	"gochat/api/v1/codec"
	pb "gochat/api/v1/message"
	"gochat/internal/dbmongo"
	"gochat/internal/message/service"
)

type MessageHandler struct {
	pb.UnimplementedMessageServiceServer
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	msg, err := h.messageService.Send(ctx, service.SendInput{
		ChatID:      req.ChatID,
		UserID:      req.UserID,
		Content:     req.Content,
		RequestID:   req.RequestID,
		ReplyTo:     req.ReplyTo,
		ForwardFrom: req.ForwardFrom,
	})
	if err != nil {
		return nil, err
	}
	return &pb.SendMessageResponse{MessageID: msg.ID.Hex(), CreatedAt: msg.CreatedAt}, nil
}

func (h *MessageHandler) UpdateMessage(ctx context.Context, req *pb.UpdateMessageRequest) (*pb.MessageID, error) {
	msg, err := h.messageService.Update(ctx, req.MessageID, req.SenderID, req.NewContent, req.RequestID)
	if err != nil {
		return nil, err
	}
	return &pb.MessageID{MessageID: msg.ID.Hex()}, nil
}

func (h *MessageHandler) DeleteMessage(ctx context.Context, req *pb.DeleteMessageRequest) (*pb.DeleteMessageResponse, error) {
	if err := h.messageService.Delete(ctx, req.MessageID, req.SenderID, req.RequestID); err != nil {
		return nil, err
	}
	return &pb.DeleteMessageResponse{Status: "deleted"}, nil
}

func (h *MessageHandler) GetAllMessages(ctx context.Context, req *pb.GetAllMessagesRequest) (*pb.AllMessages, error) {
	messages, usernames, err := h.messageService.GetAll(ctx, req.ChatID)
	if err != nil {
		return nil, err
	}

	resp := &pb.AllMessages{Messages: make([]*pb.Message, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, &pb.Message{
			ID:        m.ID.Hex(),
			ChatID:    m.ChatID,
			Sender:    pb.SenderData{ID: m.UserID, Username: usernames[m.UserID]},
			Content:   m.Content,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt,
			Metadata:  toMetadata(m.Metadata),
		})
	}
	return resp, nil
}

func (h *MessageHandler) GetMessageData(ctx context.Context, req *pb.GetMessageDataRequest) (*pb.FullMessageData, error) {
	msg, statuses, err := h.messageService.Get(ctx, req.MessageID, true)
	if err != nil {
		return nil, err
	}

	readBy := make([]pb.ReadBy, 0, len(statuses))
	for _, s := range statuses {
		readBy = append(readBy, pb.ReadBy{ID: s.ReadBy, ReadAt: s.ReadAt})
	}
	return &pb.FullMessageData{
		ID:        msg.ID.Hex(),
		ChatID:    msg.ChatID,
		UserID:    msg.UserID,
		Content:   msg.Content,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
		Metadata:  toMetadata(msg.Metadata),
		ReadBy:    readBy,
	}, nil
}

func (h *MessageHandler) AddReaction(ctx context.Context, req *pb.ReactionRequest) (*codec.Empty, error) {
	if err := h.messageService.AddReaction(ctx, req.MessageID, req.Reaction, req.Author); err != nil {
		return nil, err
	}
	return &codec.Empty{}, nil
}

func (h *MessageHandler) RemoveReaction(ctx context.Context, req *pb.ReactionRequest) (*codec.Empty, error) {
	if err := h.messageService.RemoveReaction(ctx, req.MessageID, req.Reaction, req.Author); err != nil {
		return nil, err
	}
	return &codec.Empty{}, nil
}

func (h *MessageHandler) MarkAsRead(ctx context.Context, req *pb.MarkAsReadRequest) (*pb.MarkAsReadResponse, error) {
	read, err := h.messageService.MarkAsRead(ctx, req.ChatID, req.UserID, req.LastReadMessageID)
	if err != nil {
		return nil, err
	}

	resp := &pb.MarkAsReadResponse{Marked: make([]pb.ReadMessage, 0, len(read))}
	for _, r := range read {
		resp.Marked = append(resp.Marked, pb.ReadMessage{MessageID: r.MessageID, SenderID: r.SenderID})
	}
	return resp, nil
}

func toMetadata(m dbmongo.MessageMetadata) pb.Metadata {
	out := pb.Metadata{
		IsEdited:  m.IsEdited,
		IsPinned:  m.IsPinned,
		Reactions: m.Reactions,
	}
	if out.Reactions == nil {
		out.Reactions = map[string][]int64{}
	}
	if m.ReplyTo != nil {
		out.ReplyTo = &pb.ReplyData{
			MessageID: m.ReplyTo.MessageID,
			UserID:    m.ReplyTo.UserID,
			Username:  m.ReplyTo.Username,
			Preview:   m.ReplyTo.Preview,
		}
	}
	if m.ForwardFrom != nil {
		out.ForwardFrom = &pb.ForwardData{
			MessageID: m.ForwardFrom.MessageID,
			ChatID:    m.ForwardFrom.ChatID,
			UserID:    m.ForwardFrom.UserID,
		}
	}
	return out
}
