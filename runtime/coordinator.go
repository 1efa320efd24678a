// Package runtime hosts the live parts of the hub: the presence
// registry, the typing coordinator, and the delivery coordinator that
// orchestrates a send from persistence to fan-out to offline fallback.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"whisper-hub/contract"
	"whisper-hub/domain"
	"whisper-hub/domain/event"
	"whisper-hub/errors"
	"whisper-hub/push"
	"whisper-hub/repositories"
	"whisper-hub/runtime/workers"
)

// Coordinator is the delivery hub. It is the only component that
// touches the message store, the presence registry, and the push
// pipeline together; everything else depends on at most one of them.
type Coordinator struct {
	log           *slog.Logger
	messages      repositories.IMessageRepository
	users         repositories.IUserRepository
	subscriptions repositories.ISubscriptionRepository
	presence      contract.IPresenceRegistry
	social        contract.ISocialGraph
	pushJobs      chan<- workers.PushJob
}

func NewCoordinator(log *slog.Logger,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	subscriptions repositories.ISubscriptionRepository,
	presence contract.IPresenceRegistry,
	social contract.ISocialGraph,
	pushJobs chan<- workers.PushJob) *Coordinator {
	return &Coordinator{
		log:           log,
		messages:      messages,
		users:         users,
		subscriptions: subscriptions,
		presence:      presence,
		social:        social,
		pushJobs:      pushJobs,
	}
}

// SendMessage runs the per-send protocol: validate, persist, fan out to
// the recipient's live connections, echo to the sender, push the new
// unread count, and fall back to the push pipeline when the recipient
// has no live connection. Success is defined entirely by persistence:
// once Append has returned, nothing downstream can fail the send.
func (c *Coordinator) SendMessage(ctx context.Context, cmd domain.SendCommand) (event.EnrichedMessage, error) {
	if err := cmd.Validate(); err != nil {
		return event.EnrichedMessage{}, err
	}

	allowed, err := c.social.CanMessage(cmd.From, cmd.To)
	if err != nil {
		return event.EnrichedMessage{}, err
	}
	if !allowed {
		return event.EnrichedMessage{}, errors.ErrNotAllowed
	}

	msg, err := c.messages.Append(cmd)
	if err != nil {
		return event.EnrichedMessage{}, err
	}

	enriched := c.enrich(msg)

	// Liveness is snapshotted once, here. A connection that drops
	// between this lookup and the push below loses the event; that is
	// accepted best-effort delivery, no compensating fallback push.
	recipientConns := c.presence.ConnectionsOf(cmd.To)
	c.deliver(ctx, recipientConns, event.MessageReceived{Message: enriched})
	c.deliver(ctx, c.presence.ConnectionsOf(cmd.From), event.MessageSentAck{Message: enriched})
	c.notifyUnread(ctx, cmd.To, recipientConns)

	if len(recipientConns) == 0 {
		c.queueFallbackPush(enriched)
	}
	return enriched, nil
}

// MarkAsRead acknowledges every unread message from sender to reader
// and sweeps ephemeral ones. No liveness or push logic is involved, and
// repeating the call is harmless.
func (c *Coordinator) MarkAsRead(_ context.Context, from, to string) (int, error) {
	return c.messages.MarkRead(from, to)
}

// UnreadCount is a pure read-through; every call re-queries the store.
func (c *Coordinator) UnreadCount(_ context.Context, identity string) (int, error) {
	return c.messages.UnreadCount(identity)
}

// Conversation returns the full exchange between the caller and the
// other participant, with display names resolved.
func (c *Coordinator) Conversation(_ context.Context, userA, userB string) ([]event.EnrichedMessage, error) {
	messages, err := c.messages.Conversation(userA, userB)
	if err != nil {
		return nil, err
	}
	enriched := make([]event.EnrichedMessage, 0, len(messages))
	for _, msg := range messages {
		enriched = append(enriched, c.enrich(msg))
	}
	return enriched, nil
}

// enrich embeds resolved display names into the outbound shape. This is
// the one place cross-entity denormalization happens; a missing profile
// falls back to the bare identity.
func (c *Coordinator) enrich(msg domain.Message) event.EnrichedMessage {
	return event.EnrichedMessage{
		ID:        msg.ID,
		From:      msg.From,
		FromName:  c.displayName(msg.From),
		To:        msg.To,
		ToName:    c.displayName(msg.To),
		Body:      msg.Body,
		SentAt:    msg.SentAt,
		Read:      msg.Read,
		Ephemeral: msg.Ephemeral,
	}
}

func (c *Coordinator) displayName(identity string) string {
	profile, err := c.users.GetProfile(identity)
	if err != nil || profile.DisplayName == "" {
		return identity
	}
	return profile.DisplayName
}

func (c *Coordinator) deliver(ctx context.Context, sinks []contract.EventSink, evt event.DeliveryEvent) {
	for _, sink := range sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			c.log.Debug(fmt.Sprintf("Event dropped for %s", evt.Recipient()), "error", err)
		}
	}
}

// notifyUnread recomputes the recipient's badge and ships it as its own
// event. The send already succeeded, so a failed recount only logs.
func (c *Coordinator) notifyUnread(ctx context.Context, to string, conns []contract.EventSink) {
	if len(conns) == 0 {
		return
	}
	count, err := c.messages.UnreadCount(to)
	if err != nil {
		c.log.Warn(fmt.Sprintf("Unread recount failed for %s", to), "error", err)
		return
	}
	c.deliver(ctx, conns, event.UnreadCountChanged{To: to, Count: count})
}

// queueFallbackPush hands the offline recipient's endpoints to the push
// pipeline. Fire-and-forget: a full queue or a listing failure is
// logged, never surfaced to the sender.
func (c *Coordinator) queueFallbackPush(msg event.EnrichedMessage) {
	subs, err := c.subscriptions.ListByUser(msg.To)
	if err != nil {
		c.log.Warn(fmt.Sprintf("Subscription lookup failed for %s", msg.To), "error", err)
		return
	}
	if len(subs) == 0 {
		return
	}

	job := workers.PushJob{
		Subscriptions: subs,
		Notification: push.Notification{
			Title: msg.FromName,
			Body:  msg.Body,
			URL:   "/chat/" + msg.From,
		},
	}
	select {
	case c.pushJobs <- job:
	default:
		c.log.Warn(fmt.Sprintf("Push queue full, dropping notification for %s", msg.To))
	}
}
