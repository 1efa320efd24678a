package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"whisper-hub/domain/event"
	"whisper-hub/errors"
)

func TestSinkBuffersEvents(t *testing.T) {
	req := require.New(t)
	sink := NewSink(2)

	req.NoError(sink.Consume(context.Background(), event.UnreadCountChanged{To: "bob", Count: 1}))
	req.NoError(sink.Consume(context.Background(), event.UnreadCountChanged{To: "bob", Count: 2}))

	first := <-sink.Events
	req.Equal(1, first.(event.UnreadCountChanged).Count)
}

func TestSinkReportsDropWhenFull(t *testing.T) {
	req := require.New(t)
	sink := NewSink(1)

	req.NoError(sink.Consume(context.Background(), event.UnreadCountChanged{To: "bob", Count: 1}))
	// The buffer is full; the event is dropped and the drop reported,
	// without ever blocking the hub.
	err := sink.Consume(context.Background(), event.UnreadCountChanged{To: "bob", Count: 2})
	req.ErrorIs(err, errors.ErrSlowConsumer)

	req.Len(sink.Events, 1)
	evt := <-sink.Events
	req.Equal(1, evt.(event.UnreadCountChanged).Count)
}
