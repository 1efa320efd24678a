package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"whisper-hub/errors"
	pb "whisper-hub/proto/account"
)

// Methods reachable without a token. Generated full-method constants
// keep this map in sync with the proto.
var publicMethods = map[string]struct{}{
	pb.AuthService_Login_FullMethodName:    {},
	pb.AuthService_Register_FullMethodName: {},
}

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// Identity returns the resolved caller identity, rejecting calls that
// reached the core without one.
func Identity(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", errors.ErrNotAuthenticated
	}
	return userID, nil
}

// UnaryInterceptor validates the bearer token on every unary call and
// injects the resolved identity into the handler context.
func UnaryInterceptor(tokens *TokenManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublicMethod(info.FullMethod) {
			return handler(ctx, req)
		}
		newCtx, err := authenticate(ctx, tokens)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

// StreamInterceptor does the same for streaming calls; the Connect
// event channel resolves its identity here, once, at stream setup.
func StreamInterceptor(tokens *TokenManager) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream,
		info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if isPublicMethod(info.FullMethod) {
			return handler(srv, ss)
		}
		newCtx, err := authenticate(ss.Context(), tokens)
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: newCtx})
	}
}

func authenticate(ctx context.Context, tokens *TokenManager) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	claims, err := tokens.Validate(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
	newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)
	return newCtx, nil
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context { return s.ctx }

func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}
