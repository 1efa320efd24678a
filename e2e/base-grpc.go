package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"whisper-hub/auth"
	grpcserver "whisper-hub/infrastructure/grpc/server"
	pbaccount "whisper-hub/proto/account"
	pbchat "whisper-hub/proto/chat"
	"whisper-hub/push"
	"whisper-hub/repositories"
	"whisper-hub/runtime"
	"whisper-hub/runtime/workers"
	"whisper-hub/services"
	"whisper-hub/social"
)

// typingRevertDelay is shortened for the suite so auto-revert scenarios
// do not sit idle for the production two seconds.
const typingRevertDelay = 300 * time.Millisecond

type BaseGrpcSuite struct {
	suite.Suite
	Config Config

	server *grpc.Server
	sup    *workers.Supervisor
	cancel context.CancelFunc
	db     *badger.DB
}

// SetupSuite loads the environment configuration, then either targets
// the configured hub or boots a private one on a loopback port.
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.HubAddr == "" {
		s.bootLocalHub()
	}
}

func (s *BaseGrpcSuite) TearDownSuite() {
	if s.server != nil {
		s.server.GracefulStop()
	}
	if s.sup != nil {
		s.sup.Stop()
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// bootLocalHub wires the same component graph as the server binary,
// backed by a throwaway database and the logging push gateway.
func (s *BaseGrpcSuite) bootLocalHub() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLogger(nil))
	s.Require().NoError(err)
	s.db = db

	messages := repositories.NewMessageRepository(db, log)
	users := repositories.NewUserRepository(db)
	subscriptions := repositories.NewSubscriptionRepository(db)

	registry := runtime.NewRegistry()
	typing := runtime.NewTypingCoordinator(log, registry, typingRevertDelay)
	pushJobs := make(chan workers.PushJob, 16)

	s.sup = workers.NewSupervisor(log, 0)
	s.sup.Add(workers.NewPushDispatcher(log, push.NewLogGateway(log), pushJobs))

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.sup.Run(ctx)

	coordinator := runtime.NewCoordinator(log, messages, users, subscriptions,
		registry, social.AllowAll{}, pushJobs)
	delivery := services.NewDeliveryService(coordinator, typing, registry)

	tokens := auth.NewTokenManager("e2e-secret", time.Hour)
	accounts := services.NewAccountService(users, tokens)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	s.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(auth.UnaryInterceptor(tokens)),
		grpc.ChainStreamInterceptor(auth.StreamInterceptor(tokens)),
	)
	pbchat.RegisterChatServiceServer(s.server, grpcserver.NewChatServer(log, delivery, 16))
	pbaccount.RegisterAuthServiceServer(s.server, grpcserver.NewAccountServer(accounts))
	pbaccount.RegisterPushSubscriptionServiceServer(s.server, grpcserver.NewSubscriptionServer(subscriptions))

	go func() { _ = s.server.Serve(listener) }()
	s.Config.HubAddr = listener.Addr().String()
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(s.Config.HubAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.HubAddr)
	return conn
}

// WithAuth provides an AuthService client within a contextual test step
func (s *BaseGrpcSuite) WithAuth(name string, fn func(ctx context.Context, client pbaccount.AuthServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, pbaccount.NewAuthServiceClient(conn))
}

// WithChat provides an authenticated ChatService client within a
// contextual test step. The bearer token goes out as metadata, exactly
// the way a real client authenticates.
func (s *BaseGrpcSuite) WithChat(name, token string, fn func(ctx context.Context, client pbchat.ChatServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(AuthCtx(ctx, token), pbchat.NewChatServiceClient(conn))
}

// AuthCtx attaches the bearer token to the outgoing metadata.
func AuthCtx(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}
