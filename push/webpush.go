package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"whisper-hub/repositories"
)

const defaultTimeout = 5 * time.Second

// WebPushGateway delivers notifications over the Web Push protocol with
// VAPID authentication, matching what browser service workers expect.
type WebPushGateway struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string // contact URI required by VAPID, e.g. mailto:ops@example.com
	timeout         time.Duration
}

func NewWebPushGateway(vapidPublicKey, vapidPrivateKey, subscriber string,
	timeout time.Duration) *WebPushGateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebPushGateway{
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
		timeout:         timeout,
	}
}

func (g *WebPushGateway) Notify(ctx context.Context, sub repositories.PushSubscription, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("payload marshal failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      g.subscriber,
		VAPIDPublicKey:  g.vapidPublicKey,
		VAPIDPrivateKey: g.vapidPrivateKey,
		TTL:             60,
	})
	if err != nil {
		return fmt.Errorf("web push to %s failed: %w", sub.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("web push to %s rejected with status %d", sub.Endpoint, resp.StatusCode)
	}
	return nil
}
