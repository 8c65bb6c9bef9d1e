package runtime

import (
	"sync"

	"im-core/domain"
	"im-core/domain/event"
)

// Registry is the single source of truth mapping account instance
// identifiers to live sessions. It also tracks registration order, which
// fixes the winner on aggregation key collisions: the session registered
// first keeps its entry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	order    []int64
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

func (r *Registry) Add(instance int64, session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[instance]; ok {
		return
	}
	r.sessions[instance] = session
	r.order = append(r.order, instance)
}

// Remove tears the session down and forgets it. Removing an unknown
// instance is a no-op.
//
// Disposal mutates the session's entity directories, so while the router is
// running this must only execute on its dispatch goroutine; other goroutines
// go through Router.RemoveSession, which queues the teardown.
func (r *Registry) Remove(instance int64) {
	r.mu.Lock()
	session, ok := r.sessions[instance]
	if ok {
		delete(r.sessions, instance)
		for i, id := range r.order {
			if id == instance {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if ok {
		session.Close()
	}
}

func (r *Registry) Get(instance int64) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[instance]
}

// Ordered returns the registered sessions in registration order.
func (r *Registry) Ordered() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0, len(r.order))
	for _, instance := range r.order {
		sessions = append(sessions, r.sessions[instance])
	}
	return sessions
}

// AllContacts merges the per-session rosters into one view keyed by user
// identifier. First registered session wins on identifier collisions.
func (r *Registry) AllContacts() map[string]*domain.Contact {
	merged := make(map[string]*domain.Contact)
	for _, session := range r.Ordered() {
		for id, contact := range session.Contacts() {
			if _, ok := merged[id]; !ok {
				merged[id] = contact
			}
		}
	}
	return merged
}

func (r *Registry) AllUsers() map[string]*domain.User {
	merged := make(map[string]*domain.User)
	for _, session := range r.Ordered() {
		for id, user := range session.Users() {
			if _, ok := merged[id]; !ok {
				merged[id] = user
			}
		}
	}
	return merged
}

func (r *Registry) AllConversations() map[string]*domain.Conversation {
	merged := make(map[string]*domain.Conversation)
	for _, session := range r.Ordered() {
		for id, conversation := range session.Conversations() {
			if _, ok := merged[id]; !ok {
				merged[id] = conversation
			}
		}
	}
	return merged
}

// LoginAll broadcasts a set-status-online event to every registered session.
func (r *Registry) LoginAll() {
	for _, session := range r.Ordered() {
		session.PostEvent(event.New(event.SetOwnStatus).
			WithInstance(session.Instance()).
			WithInt32("status", int32(domain.Online)))
	}
}

// Broadcast posts a clone of the event to every registered session.
func (r *Registry) Broadcast(ev *event.Event) {
	if ev == nil {
		return
	}
	for _, session := range r.Ordered() {
		session.PostEvent(ev.Clone().WithInstance(session.Instance()))
	}
}
