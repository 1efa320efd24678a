//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"whisper-hub/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one live connection handle: the hub pushes events into it,
// the transport layer drains it towards the client.
type EventSink interface {
	Consume(ctx context.Context, e event.DeliveryEvent) error
}

// IPresenceRegistry maps identities to their live connection handles.
// An identity with no handles is indistinguishable from an absent one.
type IPresenceRegistry interface {
	Connect(identity, connectionID string, sink EventSink)
	Disconnect(identity, connectionID string)
	IsLive(identity string) bool
	ConnectionsOf(identity string) []EventSink
}

// ITypingCoordinator manages transient typing indicators with
// self-expiring, cancellable timers per (from, to) pair.
type ITypingCoordinator interface {
	Typing(ctx context.Context, from, to string)
	StopTyping(ctx context.Context, from, to string)
}

// ISocialGraph answers whether a sender may message a recipient.
// The follow/accept workflow behind the answer is not the hub's concern.
type ISocialGraph interface {
	CanMessage(from, to string) (bool, error)
}
