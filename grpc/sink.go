// Package grpc carries the per-connection plumbing between the hub and
// a client stream.
package grpc

import (
	"context"

	"whisper-hub/domain/event"
	"whisper-hub/errors"
)

// Sink is one live connection handle: a buffered channel the hub pushes
// delivery events into and the stream handler drains. A full buffer
// drops the event rather than blocking the hub; real-time delivery is
// best-effort.
type Sink struct {
	Events chan event.DeliveryEvent
}

func NewSink(bufferSize int) *Sink {
	return &Sink{Events: make(chan event.DeliveryEvent, bufferSize)}
}

// Consume is called by the delivery and typing coordinators. The stream
// handler owns the other end of the channel. A drop is reported back so
// the caller can log it; the event is lost either way.
func (s *Sink) Consume(_ context.Context, e event.DeliveryEvent) error {
	select {
	case s.Events <- e:
		return nil
	default:
		return errors.ErrSlowConsumer
	}
}
