//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=../mocks/mock_push_gateway.go -package=mocks
// Package push is the out-of-band notification collaborator. It is
// strictly best-effort: delivery failures never propagate back into a
// send that already succeeded at the storage layer.
package push

import (
	"context"

	"whisper-hub/repositories"
)

// Notification is the payload shipped to an offline recipient's
// registered endpoints.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// IGateway delivers one notification to one registered endpoint. The
// gateway owns its delivery timeout; callers never block the send path
// on it.
type IGateway interface {
	Notify(ctx context.Context, sub repositories.PushSubscription, n Notification) error
}
