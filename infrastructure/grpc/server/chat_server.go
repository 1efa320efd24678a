package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"whisper-hub/auth"
	"whisper-hub/domain"
	"whisper-hub/domain/event"
	"whisper-hub/errors"
	grpcsink "whisper-hub/grpc"
	pb "whisper-hub/proto/chat"
	"whisper-hub/services"
)

// ChatServer exposes the hub over gRPC. The caller identity always
// comes from the authenticated context, never from request fields.
type ChatServer struct {
	pb.UnimplementedChatServiceServer
	delivery             services.IDeliveryService
	connectionBufferSize int
	log                  *slog.Logger
}

func NewChatServer(log *slog.Logger, delivery services.IDeliveryService,
	connectionBufferSize int) *ChatServer {
	return &ChatServer{
		delivery:             delivery,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
	}
}

// Connect establishes the long-lived event channel for one connection.
// It registers a dedicated sink in the presence registry and blocks
// until the client goes away; deferred detach keeps the registry free
// of dead handles.
func (s *ChatServer) Connect(_ *pb.ConnectRequest, stream pb.ChatService_ConnectServer) error {
	identity, err := auth.Identity(stream.Context())
	if err != nil {
		return errors.MapToGRPCError(err)
	}

	sink := grpcsink.NewSink(s.connectionBufferSize)
	connectionID := uuid.NewString()
	s.delivery.Attach(identity, connectionID, sink)
	defer s.delivery.Detach(identity, connectionID)

	s.log.Info(fmt.Sprintf("Client %s connected", identity), "connection_id", connectionID)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info(fmt.Sprintf("Client %s disconnected", identity), "connection_id", connectionID)
			return nil
		case evt := <-sink.Events:
			if err := stream.Send(toServerEvent(evt)); err != nil {
				s.log.Error("failed to push event to stream",
					"identity", identity,
					"connection_id", connectionID,
					"error", err)
				return err
			}
		}
	}
}

func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	msg, err := s.delivery.SendMessage(ctx, domain.SendCommand{
		From:      identity,
		To:        req.To,
		Body:      req.Body,
		Ephemeral: req.Ephemeral,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{Message: toMessage(msg)}, nil
}

func (s *ChatServer) Typing(ctx context.Context, req *pb.TypingRequest) (*pb.TypingResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.delivery.Typing(ctx, identity, req.To)
	return &pb.TypingResponse{}, nil
}

func (s *ChatServer) StopTyping(ctx context.Context, req *pb.TypingRequest) (*pb.TypingResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.delivery.StopTyping(ctx, identity, req.To)
	return &pb.TypingResponse{}, nil
}

func (s *ChatServer) GetConversation(ctx context.Context, req *pb.GetConversationRequest) (*pb.GetConversationResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	messages, err := s.delivery.Conversation(ctx, identity, req.OtherId)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetConversationResponse{
		Messages: lo.Map(messages, func(item event.EnrichedMessage, _ int) *pb.Message {
			return toMessage(item)
		}),
	}, nil
}

// MarkRead acknowledges messages sent by req.FromId to the caller.
func (s *ChatServer) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	marked, err := s.delivery.MarkAsRead(ctx, req.FromId, identity)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MarkReadResponse{Marked: int64(marked)}, nil
}

func (s *ChatServer) GetUnreadCount(ctx context.Context, _ *pb.GetUnreadCountRequest) (*pb.GetUnreadCountResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	count, err := s.delivery.UnreadCount(ctx, identity)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetUnreadCountResponse{Count: int64(count)}, nil
}

func toMessage(m event.EnrichedMessage) *pb.Message {
	return &pb.Message{
		Id:        m.ID.String(),
		From:      m.From,
		FromName:  m.FromName,
		To:        m.To,
		ToName:    m.ToName,
		Body:      m.Body,
		SentAt:    timestamppb.New(m.SentAt),
		Read:      m.Read,
		Ephemeral: m.Ephemeral,
	}
}

// toServerEvent maps the closed domain event set onto the wire oneof.
func toServerEvent(evt event.DeliveryEvent) *pb.ServerEvent {
	switch e := evt.(type) {
	case event.MessageReceived:
		return &pb.ServerEvent{Event: &pb.ServerEvent_Received{
			Received: &pb.MessageReceivedEvent{Message: toMessage(e.Message)},
		}}
	case event.MessageSentAck:
		return &pb.ServerEvent{Event: &pb.ServerEvent_Sent{
			Sent: &pb.MessageSentEvent{Message: toMessage(e.Message)},
		}}
	case event.UnreadCountChanged:
		return &pb.ServerEvent{Event: &pb.ServerEvent_Unread{
			Unread: &pb.UnreadCountEvent{Count: int64(e.Count)},
		}}
	case event.TypingChanged:
		return &pb.ServerEvent{Event: &pb.ServerEvent_Typing{
			Typing: &pb.TypingEvent{From: e.From, Typing: e.Typing},
		}}
	default:
		return &pb.ServerEvent{}
	}
}
