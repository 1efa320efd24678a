// Package domain contains core concepts of the delivery hub.
// This file defines the Message entity and its rules.
// Everything except the read flag is immutable after creation;
// read only ever flips from false to true.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"whisper-hub/errors"
)

// Message is a persisted direct message between two identities.
type Message struct {
	ID        uuid.UUID // time-ordered (v7), assigned at persistence
	From      string
	To        string
	Body      string
	SentAt    time.Time
	Read      bool
	Ephemeral bool // deleted once marked read
}

// SendCommand is the intent to deliver a message, before persistence
// has assigned an id or a timestamp.
type SendCommand struct {
	From      string
	To        string
	Body      string
	Ephemeral bool
}

// Validate rejects empty identities before any side effect takes place.
// Identities are opaque to the hub but become key segments in storage,
// so the segment separator is forbidden in them. Self-messaging is not
// restricted here.
func (c SendCommand) Validate() error {
	if strings.TrimSpace(c.From) == "" || strings.TrimSpace(c.To) == "" {
		return errors.ErrEmptyIdentity
	}
	if strings.ContainsRune(c.From, ':') || strings.ContainsRune(c.To, ':') {
		return errors.ErrInvalidIdentity
	}
	return nil
}

// PairKey returns the canonical conversation key for two identities:
// both directions of a conversation share the same key.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}
