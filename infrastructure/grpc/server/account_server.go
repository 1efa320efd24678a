package server

import (
	"context"

	"whisper-hub/errors"
	pb "whisper-hub/proto/account"
	"whisper-hub/services"
)

type AccountServer struct {
	pb.UnimplementedAuthServiceServer
	accounts services.IAccountService
}

func NewAccountServer(accounts services.IAccountService) *AccountServer {
	return &AccountServer{accounts: accounts}
}

func (s *AccountServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, userID, err := s.accounts.Register(in.GetEmail(), in.GetDisplayName(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token), UserId: userID}, nil
}

func (s *AccountServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, userID, err := s.accounts.Login(in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token), UserId: userID}, nil
}
