package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"whisper-hub/auth"
	"whisper-hub/contract"
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

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanup always executes
// before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & collaborators
	messageRepository := repositories.NewMessageRepository(db, log)
	userRepository := repositories.NewUserRepository(db)
	subscriptionRepository := repositories.NewSubscriptionRepository(db)

	var socialGraph contract.ISocialGraph = social.AllowAll{}
	if config.RequireMutualFollow {
		socialGraph = social.NewGraph(db)
	}

	var gateway push.IGateway = push.NewLogGateway(log)
	if config.VAPIDPublicKey != "" && config.VAPIDPrivateKey != "" {
		gateway = push.NewWebPushGateway(config.VAPIDPublicKey, config.VAPIDPrivateKey,
			config.VAPIDSubscriber, config.PushTimeout)
	}

	// 4. Hub runtime: presence, typing, delivery, push pipeline
	registry := runtime.NewRegistry()
	typing := runtime.NewTypingCoordinator(log, registry, config.TypingRevertDelay)
	pushJobs := make(chan workers.PushJob, config.PushQueueSize)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewPushDispatcher(log, gateway, pushJobs))

	coordinator := runtime.NewCoordinator(log, messageRepository, userRepository,
		subscriptionRepository, registry, socialGraph, pushJobs)
	delivery := services.NewDeliveryService(coordinator, typing, registry)

	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	accounts := services.NewAccountService(userRepository, tokens)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(auth.UnaryInterceptor(tokens)),
		grpc.ChainStreamInterceptor(auth.StreamInterceptor(tokens)),
	)
	pbchat.RegisterChatServiceServer(s, grpcserver.NewChatServer(log, delivery, config.ConnectionBufferSize))
	pbaccount.RegisterAuthServiceServer(s, grpcserver.NewAccountServer(accounts))
	pbaccount.RegisterPushSubscriptionServiceServer(s, grpcserver.NewSubscriptionServer(subscriptionRepository))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
