package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	pbaccount "whisper-hub/proto/account"
	pbchat "whisper-hub/proto/chat"
)

type testMessagingSuite struct {
	BaseGrpcSuite
}

func TestMessagingSuite(t *testing.T) {
	suite.Run(t, &testMessagingSuite{})
}

// nextEvent drains the stream channel until an event matching the
// predicate arrives or the timeout passes. Unrelated events in between
// (typing reverts, badge updates) are skipped, not failed on.
func nextEvent(events <-chan *pbchat.ServerEvent, timeout time.Duration,
	match func(*pbchat.ServerEvent) bool) *pbchat.ServerEvent {
	deadline := time.After(timeout)
	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if match(evt) {
				return evt
			}
		case <-deadline:
			return nil
		}
	}
}

func (s *testMessagingSuite) TestDirectMessageFlow() {
	var aliceToken, bobToken string
	var aliceID, bobID string

	// --- STEP 1: ACCOUNTS ---
	s.Run("Step 1: Register both participants", func() {
		s.WithAuth("Registering Alice and Bob", func(ctx context.Context, client pbaccount.AuthServiceClient) {
			alice, err := client.Register(ctx, &pbaccount.RegisterRequest{
				Email: "alice@example.com", DisplayName: "Alice", Password: "ComplexPass123!",
			})
			s.Require().NoError(err)
			aliceToken, aliceID = alice.Token, alice.UserId

			bob, err := client.Register(ctx, &pbaccount.RegisterRequest{
				Email: "bob@example.com", DisplayName: "Bob", Password: "ComplexPass123!",
			})
			s.Require().NoError(err)
			bobToken, bobID = bob.Token, bob.UserId
		})
	})

	// --- STEP 2: BOB GOES LIVE ---
	// The stream stays open across the remaining steps; a reader
	// goroutine funnels server events into a channel for assertions.
	conn := s.GrpcConn(s.T(), "Bob event channel")
	defer conn.Close()

	streamCtx, cancelStream := context.WithCancel(context.Background())
	defer cancelStream()

	stream, err := pbchat.NewChatServiceClient(conn).Connect(
		AuthCtx(streamCtx, bobToken), &pbchat.ConnectRequest{})
	s.Require().NoError(err)

	bobEvents := make(chan *pbchat.ServerEvent, 32)
	go func() {
		defer close(bobEvents)
		for {
			evt, err := stream.Recv()
			if err != nil {
				return
			}
			bobEvents <- evt
		}
	}()

	aliceConn := s.GrpcConn(s.T(), "Alice client")
	defer aliceConn.Close()
	aliceChat := pbchat.NewChatServiceClient(aliceConn)
	aliceCtx := AuthCtx(context.Background(), aliceToken)

	s.Run("Step 2: Wait until Bob's connection is registered", func() {
		// Registration happens inside the stream handler, slightly after
		// Connect returns on the client. Typing pings are transient and
		// lost while offline, so the first one observed proves liveness.
		s.Require().Eventually(func() bool {
			_, err := aliceChat.Typing(aliceCtx, &pbchat.TypingRequest{To: bobID})
			if err != nil {
				return false
			}
			evt := nextEvent(bobEvents, 200*time.Millisecond,
				func(e *pbchat.ServerEvent) bool { return e.GetTyping() != nil })
			return evt != nil
		}, 10*time.Second, 50*time.Millisecond, "Bob never observed Alice's typing ping")

		_, err := aliceChat.StopTyping(aliceCtx, &pbchat.TypingRequest{To: bobID})
		s.Require().NoError(err)
	})

	// --- STEP 3: LIVE DELIVERY ---
	s.Run("Step 3: Send a message and verify live fan-out", func() {
		resp, err := aliceChat.SendMessage(aliceCtx, &pbchat.SendMessageRequest{
			To: bobID, Body: "hello bob",
		})
		s.Require().NoError(err)
		s.Require().Equal("Alice", resp.Message.FromName)
		s.Require().Equal("Bob", resp.Message.ToName)
		s.Require().False(resp.Message.Read)

		received := nextEvent(bobEvents, 5*time.Second,
			func(e *pbchat.ServerEvent) bool { return e.GetReceived() != nil })
		s.Require().NotNil(received, "Bob never received the message event")
		msg := received.GetReceived().Message
		s.Require().Equal("hello bob", msg.Body)
		s.Require().Equal(aliceID, msg.From)
		s.Require().Equal("Alice", msg.FromName)

		unread := nextEvent(bobEvents, 5*time.Second,
			func(e *pbchat.ServerEvent) bool { return e.GetUnread() != nil })
		s.Require().NotNil(unread, "Bob never received the badge update")
		s.Require().Equal(int64(1), unread.GetUnread().Count)
	})

	// --- STEP 4: READ ACKNOWLEDGEMENT ---
	s.Run("Step 4: Mark read and verify the badge drops", func() {
		s.WithChat("Bob acknowledges Alice's messages", bobToken,
			func(ctx context.Context, client pbchat.ChatServiceClient) {
				marked, err := client.MarkRead(ctx, &pbchat.MarkReadRequest{FromId: aliceID})
				s.Require().NoError(err)
				s.Require().Equal(int64(1), marked.Marked)

				count, err := client.GetUnreadCount(ctx, &pbchat.GetUnreadCountRequest{})
				s.Require().NoError(err)
				s.Require().Equal(int64(0), count.Count)

				conversation, err := client.GetConversation(ctx, &pbchat.GetConversationRequest{OtherId: aliceID})
				s.Require().NoError(err)
				s.Require().Len(conversation.Messages, 1)
				s.Require().True(conversation.Messages[0].Read)
			})
	})

	// --- STEP 5: EPHEMERAL LIFECYCLE ---
	s.Run("Step 5: Ephemeral message disappears after read", func() {
		_, err := aliceChat.SendMessage(aliceCtx, &pbchat.SendMessageRequest{
			To: bobID, Body: "this will vanish", Ephemeral: true,
		})
		s.Require().NoError(err)

		received := nextEvent(bobEvents, 5*time.Second,
			func(e *pbchat.ServerEvent) bool { return e.GetReceived() != nil })
		s.Require().NotNil(received)
		s.Require().True(received.GetReceived().Message.Ephemeral)

		s.WithChat("Bob reads the ephemeral message", bobToken,
			func(ctx context.Context, client pbchat.ChatServiceClient) {
				_, err := client.MarkRead(ctx, &pbchat.MarkReadRequest{FromId: aliceID})
				s.Require().NoError(err)

				conversation, err := client.GetConversation(ctx, &pbchat.GetConversationRequest{OtherId: aliceID})
				s.Require().NoError(err)
				s.Require().Len(conversation.Messages, 1, "The ephemeral message should be gone")
				s.Require().Equal("hello bob", conversation.Messages[0].Body)
			})
	})

	// --- STEP 6: TYPING AUTO-REVERT ---
	s.Run("Step 6: Typing indicator reverts on its own", func() {
		_, err := aliceChat.Typing(aliceCtx, &pbchat.TypingRequest{To: bobID})
		s.Require().NoError(err)

		typingOn := nextEvent(bobEvents, 5*time.Second,
			func(e *pbchat.ServerEvent) bool { return e.GetTyping() != nil && e.GetTyping().Typing })
		s.Require().NotNil(typingOn)
		s.Require().Equal(aliceID, typingOn.GetTyping().From)

		typingOff := nextEvent(bobEvents, 5*time.Second,
			func(e *pbchat.ServerEvent) bool { return e.GetTyping() != nil && !e.GetTyping().Typing })
		s.Require().NotNil(typingOff, "The auto-revert never arrived")
	})
}
