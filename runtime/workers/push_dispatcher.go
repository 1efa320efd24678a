package workers

import (
	"context"
	"fmt"
	"log/slog"

	"whisper-hub/push"
	"whisper-hub/repositories"
)

// PushJob is one offline-fallback request: the notification plus every
// endpoint registered by the recipient at send time.
type PushJob struct {
	Subscriptions []repositories.PushSubscription
	Notification  push.Notification
}

// PushDispatcher drains the job channel and invokes the gateway once
// per endpoint. Gateway failures are logged and swallowed: the send
// that queued the job already succeeded and must stay successful.
type PushDispatcher struct {
	log     *slog.Logger
	gateway push.IGateway
	jobs    <-chan PushJob
}

func NewPushDispatcher(log *slog.Logger, gateway push.IGateway, jobs <-chan PushJob) *PushDispatcher {
	return &PushDispatcher{log: log, gateway: gateway, jobs: jobs}
}

func (w *PushDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping push dispatcher")
			return nil
		case job := <-w.jobs:
			w.dispatch(ctx, job)
		}
	}
}

func (w *PushDispatcher) dispatch(ctx context.Context, job PushJob) {
	for _, sub := range job.Subscriptions {
		if err := w.gateway.Notify(ctx, sub, job.Notification); err != nil {
			w.log.Warn(fmt.Sprintf("Push delivery failed for %s", sub.UserID),
				"endpoint", sub.Endpoint,
				"error", err)
		}
	}
}
