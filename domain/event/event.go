package event

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryEvent is the closed set of events the hub pushes to live
// connections. Recipient names the identity whose connections should
// receive the event.
type DeliveryEvent interface {
	Recipient() string
}

// EnrichedMessage is a message with resolved display names embedded, so
// clients never need a follow-up profile lookup.
type EnrichedMessage struct {
	ID        uuid.UUID
	From      string
	FromName  string
	To        string
	ToName    string
	Body      string
	SentAt    time.Time
	Read      bool
	Ephemeral bool
}

// MessageReceived carries an incoming message to the recipient.
type MessageReceived struct {
	Message EnrichedMessage
}

func (e MessageReceived) Recipient() string { return e.Message.To }

// MessageSentAck is the sender's own echo. Kept distinct from
// MessageReceived so a client can tell its echo apart without
// comparing ids.
type MessageSentAck struct {
	Message EnrichedMessage
}

func (e MessageSentAck) Recipient() string { return e.Message.From }

// UnreadCountChanged is a badge update, decoupled from message delivery.
type UnreadCountChanged struct {
	To    string
	Count int
}

func (e UnreadCountChanged) Recipient() string { return e.To }

// TypingChanged reports transient typing state of From towards To.
type TypingChanged struct {
	From   string
	To     string
	Typing bool
}

func (e TypingChanged) Recipient() string { return e.To }
