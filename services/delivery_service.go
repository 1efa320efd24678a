//go:generate go run go.uber.org/mock/mockgen -source=delivery_service.go -destination=../mocks/mock_delivery_service.go -package=mocks
package services

import (
	"context"

	"whisper-hub/contract"
	"whisper-hub/domain"
	"whisper-hub/domain/event"
	"whisper-hub/runtime"
)

// IDeliveryService is the surface the transport layer talks to: every
// hub operation, plus connection attach/detach for the presence
// registry.
type IDeliveryService interface {
	SendMessage(ctx context.Context, cmd domain.SendCommand) (event.EnrichedMessage, error)
	MarkAsRead(ctx context.Context, from, to string) (int, error)
	UnreadCount(ctx context.Context, identity string) (int, error)
	Conversation(ctx context.Context, userA, userB string) ([]event.EnrichedMessage, error)
	Typing(ctx context.Context, from, to string)
	StopTyping(ctx context.Context, from, to string)
	Attach(identity, connectionID string, sink contract.EventSink)
	Detach(identity, connectionID string)
}

type DeliveryService struct {
	coordinator *runtime.Coordinator
	typing      contract.ITypingCoordinator
	presence    contract.IPresenceRegistry
}

func NewDeliveryService(coordinator *runtime.Coordinator,
	typing contract.ITypingCoordinator,
	presence contract.IPresenceRegistry) *DeliveryService {
	return &DeliveryService{coordinator: coordinator, typing: typing, presence: presence}
}

func (s *DeliveryService) SendMessage(ctx context.Context, cmd domain.SendCommand) (event.EnrichedMessage, error) {
	return s.coordinator.SendMessage(ctx, cmd)
}

func (s *DeliveryService) MarkAsRead(ctx context.Context, from, to string) (int, error) {
	return s.coordinator.MarkAsRead(ctx, from, to)
}

func (s *DeliveryService) UnreadCount(ctx context.Context, identity string) (int, error) {
	return s.coordinator.UnreadCount(ctx, identity)
}

func (s *DeliveryService) Conversation(ctx context.Context, userA, userB string) ([]event.EnrichedMessage, error) {
	return s.coordinator.Conversation(ctx, userA, userB)
}

func (s *DeliveryService) Typing(ctx context.Context, from, to string) {
	s.typing.Typing(ctx, from, to)
}

func (s *DeliveryService) StopTyping(ctx context.Context, from, to string) {
	s.typing.StopTyping(ctx, from, to)
}

// Attach registers one live connection for the identity. There is no
// retroactive delivery of missed messages; clients fetch the
// conversation on activation.
func (s *DeliveryService) Attach(identity, connectionID string, sink contract.EventSink) {
	s.presence.Connect(identity, connectionID, sink)
}

// Detach removes the connection handle; no message side effects.
func (s *DeliveryService) Detach(identity, connectionID string) {
	s.presence.Disconnect(identity, connectionID)
}
