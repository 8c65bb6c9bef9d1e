//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"im-core/domain"
	"im-core/domain/event"
)

// Protocol is one pluggable backend connection for a single account.
// Start hands the backend an emit callback for inbound bus events; Process
// receives outgoing events the router addressed to this account. Both sides
// are fire-and-forget.
type Protocol interface {
	Name() string
	Start(emit func(*event.Event)) error
	Process(ev *event.Event) error
	Shutdown() error
}

// TranscriptSink consumes conversation transcript entries in arrival order.
type TranscriptSink interface {
	Append(instance int64, chatID string, msg domain.Message) error
}

// TranscriptHistory replays the persisted transcript of one conversation,
// oldest first, so a freshly created conversation starts with its backlog.
type TranscriptHistory interface {
	History(instance int64, chatID string) ([]domain.Message, error)
}

// Notification severities understood by presentation collaborators.
const (
	NotifyInfo int32 = iota
	NotifyImportant
	NotifyError
)

// NotificationRelay hands protocol progress and notification events to the
// presentation layer.
type NotificationRelay interface {
	Progress(protocol, title, message string, progress float64)
	Notify(protocol string, kind int32, title, message string)
}

// ReplyFunc posts the chosen event back onto the owning session's queue.
type ReplyFunc func(*event.Event)

// InvitePrompter asks the presentation layer to accept or reject a room
// invitation. The prompter posts exactly one of the two events via reply.
type InvitePrompter interface {
	PromptInvite(title, body string, accept, reject *event.Event, reply ReplyFunc)
}

// RoomCache is the persistence collaborator remembering which rooms were
// joined per protocol, so they can be rejoined when the protocol comes up.
type RoomCache interface {
	Rooms(protocol string) ([]string, error)
	AddRoom(protocol, chatID string) error
	RemoveRoom(protocol, chatID string) error
}

// Worker doesn't protect itself; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision purposes, avoiding manual naming in the
// Worker interface.
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
