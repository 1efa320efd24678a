package server

import (
	"context"

	"github.com/samber/lo"

	"whisper-hub/auth"
	"whisper-hub/errors"
	pb "whisper-hub/proto/account"
	"whisper-hub/repositories"
)

// SubscriptionServer manages the caller's registered push endpoints.
// Subscriptions always belong to the authenticated identity.
type SubscriptionServer struct {
	pb.UnimplementedPushSubscriptionServiceServer
	subscriptions repositories.ISubscriptionRepository
}

func NewSubscriptionServer(subscriptions repositories.ISubscriptionRepository) *SubscriptionServer {
	return &SubscriptionServer{subscriptions: subscriptions}
}

func (s *SubscriptionServer) Save(ctx context.Context, in *pb.SaveSubscriptionRequest) (*pb.SaveSubscriptionResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	err = s.subscriptions.Save(repositories.PushSubscription{
		UserID:   identity,
		Endpoint: in.GetEndpoint(),
		P256DH:   in.GetP256Dh(),
		Auth:     in.GetAuth(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SaveSubscriptionResponse{Success: true}, nil
}

func (s *SubscriptionServer) List(ctx context.Context, _ *pb.ListSubscriptionsRequest) (*pb.ListSubscriptionsResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	subs, err := s.subscriptions.ListByUser(identity)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListSubscriptionsResponse{
		Subscriptions: lo.Map(subs, func(item repositories.PushSubscription, _ int) *pb.Subscription {
			return &pb.Subscription{
				Endpoint:  item.Endpoint,
				P256Dh:    item.P256DH,
				Auth:      item.Auth,
				CreatedAt: item.CreatedAt.UnixNano(),
			}
		}),
	}, nil
}

func (s *SubscriptionServer) Delete(ctx context.Context, in *pb.DeleteSubscriptionRequest) (*pb.DeleteSubscriptionResponse, error) {
	identity, err := auth.Identity(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	if err := s.subscriptions.Delete(identity, in.GetEndpoint()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DeleteSubscriptionResponse{Success: true}, nil
}
