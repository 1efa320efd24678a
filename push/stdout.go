package push

import (
	"context"
	"fmt"
	"log/slog"

	"whisper-hub/repositories"
)

// LogGateway writes notifications to the log instead of a push service.
// Useful for development and as the default when no VAPID keys are
// configured.
type LogGateway struct {
	log *slog.Logger
}

func NewLogGateway(log *slog.Logger) *LogGateway {
	return &LogGateway{log: log}
}

func (g *LogGateway) Notify(_ context.Context, sub repositories.PushSubscription, n Notification) error {
	g.log.Info(fmt.Sprintf("Push to %s", sub.Endpoint),
		"user_id", sub.UserID,
		"title", n.Title,
		"body", n.Body,
		"url", n.URL)
	return nil
}
