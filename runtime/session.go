// Package runtime owns event routing and session lifecycle. It moves typed
// events between protocol backends and the entity directory without holding
// business rules of its own beyond dispatch.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"im-core/contract"
	"im-core/domain"
	"im-core/domain/event"
)

// Session owns one backend protocol connection and its private event queue.
// Outgoing events are processed strictly in FIFO order on the session's own
// goroutine; nothing is ever processed inline on the caller.
//
// The session also owns the entity directories scoped to its account: users,
// contacts and conversations, each keyed by protocol-scoped identifier.
// Directory access is confined to the router goroutine; only PostEvent and
// Close cross goroutines.
type Session struct {
	instance int64
	proto    contract.Protocol
	log      *slog.Logger

	queue chan *event.Event

	closeOnce sync.Once
	closed    chan struct{}

	ownID         string
	users         map[string]*domain.User
	contacts      map[string]*domain.Contact
	conversations map[string]*domain.Conversation
}

func NewSession(instance int64, proto contract.Protocol, bufferSize int, log *slog.Logger) *Session {
	return &Session{
		instance:      instance,
		proto:         proto,
		log:           log,
		queue:         make(chan *event.Event, bufferSize),
		closed:        make(chan struct{}),
		users:         make(map[string]*domain.User),
		contacts:      make(map[string]*domain.Contact),
		conversations: make(map[string]*domain.Conversation),
	}
}

func (s *Session) Instance() int64 { return s.instance }

func (s *Session) Protocol() contract.Protocol { return s.proto }

func (s *Session) ProtocolName() string { return s.proto.Name() }

func (s *Session) OwnID() string { return s.ownID }

func (s *Session) SetOwnID(id string) { s.ownID = id }

// PostEvent enqueues an event for asynchronous processing by the backend.
// Events posted after Close, or while the queue is full, are dropped with a
// log line; delivery is at-most-once by design.
func (s *Session) PostEvent(ev *event.Event) {
	if ev == nil {
		return
	}
	select {
	case <-s.closed:
		s.log.Debug("Dropping event for closed session",
			"instance", s.instance, "kind", ev.Kind.String())
		return
	default:
	}

	select {
	case s.queue <- ev:
	default:
		s.log.Warn(fmt.Sprintf("Session %d queue full, dropping %s", s.instance, ev.Kind))
	}
}

// Run drains the queue and hands each event to the backend protocol.
// It returns when the context is canceled or the session is closed.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.closed:
			return nil
		case ev := <-s.queue:
			if err := s.proto.Process(ev); err != nil {
				s.log.Warn("Protocol rejected event",
					"protocol", s.proto.Name(), "kind", ev.Kind.String(), "error", err)
			}
		}
	}
}

// Close tears the session down: stop accepting events, release every owned
// entity, then shut the backend connection down. The ordering matters;
// entities must not outlive their directories while the backend can still
// emit events referencing them.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.disposeEntities()
		if err := s.proto.Shutdown(); err != nil {
			s.log.Warn("Protocol shutdown failed",
				"protocol", s.proto.Name(), "error", err)
		}
	})
}

func (s *Session) disposeEntities() {
	for id, conversation := range s.conversations {
		conversation.SetSession(nil)
		delete(s.conversations, id)
	}
	for id, user := range s.users {
		user.SetSession(nil)
		delete(s.users, id)
	}
	for id, contact := range s.contacts {
		contact.SetSession(nil)
		delete(s.contacts, id)
	}
}

func (s *Session) UserByID(id string) *domain.User { return s.users[id] }

func (s *Session) AddUser(u *domain.User) {
	if u == nil || u.ID() == "" {
		return
	}
	s.users[u.ID()] = u
}

func (s *Session) ContactByID(id string) *domain.Contact { return s.contacts[id] }

func (s *Session) AddContact(c *domain.Contact) {
	if c == nil || c.ID() == "" {
		return
	}
	s.contacts[c.ID()] = c
}

func (s *Session) ConversationByID(id string) *domain.Conversation { return s.conversations[id] }

func (s *Session) AddConversation(c *domain.Conversation) {
	if c == nil || c.ID() == "" {
		return
	}
	s.conversations[c.ID()] = c
}

func (s *Session) RemoveConversation(id string) {
	if conversation, ok := s.conversations[id]; ok {
		conversation.SetSession(nil)
		delete(s.conversations, id)
	}
}

// Users returns a bulk snapshot of the user directory, used by the registry
// to build cross-session aggregates.
func (s *Session) Users() map[string]*domain.User {
	snapshot := make(map[string]*domain.User, len(s.users))
	for id, u := range s.users {
		snapshot[id] = u
	}
	return snapshot
}

func (s *Session) Contacts() map[string]*domain.Contact {
	snapshot := make(map[string]*domain.Contact, len(s.contacts))
	for id, c := range s.contacts {
		snapshot[id] = c
	}
	return snapshot
}

func (s *Session) Conversations() map[string]*domain.Conversation {
	snapshot := make(map[string]*domain.Conversation, len(s.conversations))
	for id, c := range s.conversations {
		snapshot[id] = c
	}
	return snapshot
}
