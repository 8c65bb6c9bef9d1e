// Package protocol hosts backend implementations of the Protocol contract.
package protocol

import (
	"sync"

	"im-core/domain/event"
)

// Loopback is an in-process backend that acknowledges everything locally:
// status changes are confirmed, joined rooms come straight back as joined,
// and every sent message is echoed by a peer named after the room. It exists
// to exercise the full contract without a network, both in the demo binary
// and in tests.
type Loopback struct {
	name    string
	ownID   string
	ownName string

	mu   sync.Mutex
	emit func(*event.Event)
}

func NewLoopback(name, ownID, ownName string) *Loopback {
	return &Loopback{name: name, ownID: ownID, ownName: ownName}
}

func (l *Loopback) Name() string { return l.name }

func (l *Loopback) Start(emit func(*event.Event)) error {
	l.mu.Lock()
	l.emit = emit
	l.mu.Unlock()

	l.send(event.New(event.OwnContactInfo).
		WithString("user_id", l.ownID).
		WithString("user_name", l.ownName))
	l.send(event.New(event.ContactInfo).
		WithString("user_id", l.ownID).
		WithString("user_name", l.ownName))
	l.send(event.New(event.ProtocolReady))
	return nil
}

func (l *Loopback) Process(ev *event.Event) error {
	switch ev.Kind {
	case event.SetOwnStatus:
		l.send(event.New(event.OwnStatusSet).
			WithInt32("status", ev.Int32("status")).
			WithString("protocol", l.name))

	case event.JoinRoom, event.RoomInviteAccept:
		l.send(event.New(event.RoomJoined).
			WithString("chat_id", ev.String("chat_id")))

	case event.SendMessage:
		chatID := ev.String("chat_id")
		body := ev.String("body")
		l.send(event.New(event.MessageSent).
			WithString("chat_id", chatID).
			WithString("user_id", l.ownID).
			WithString("body", body))
		l.send(event.New(event.MessageReceived).
			WithString("chat_id", chatID).
			WithString("user_id", chatID+"-echo").
			WithString("body", body))

	case event.CreateChat:
		peer := ev.String("user_id")
		l.send(event.New(event.ChatCreated).
			WithString("chat_id", "dm-"+peer).
			WithString("user_id", peer))
	}
	return nil
}

func (l *Loopback) Shutdown() error {
	l.mu.Lock()
	l.emit = nil
	l.mu.Unlock()
	return nil
}

func (l *Loopback) send(ev *event.Event) {
	l.mu.Lock()
	emit := l.emit
	l.mu.Unlock()

	if emit != nil {
		emit(ev)
	}
}
