package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"im-core/contract"
	"im-core/domain"
	"im-core/domain/event"
	"im-core/errors"
)

// Router is the single authoritative dispatcher for every internal bus
// event. It runs on one goroutine, draining its own FIFO queue; Dispatch is
// never re-entered concurrently. Sessions talk to it exclusively by posting
// immutable events.
type Router struct {
	domain.Notifier

	log       *slog.Logger
	registry  *Registry
	rooms     contract.RoomCache
	relay     contract.NotificationRelay
	prompter  contract.InvitePrompter
	history   contract.TranscriptHistory
	sinks     []contract.TranscriptSink
	queue     chan *event.Event
	ownStatus atomic.Int32
}

func NewRouter(log *slog.Logger, registry *Registry, rooms contract.RoomCache,
	relay contract.NotificationRelay, prompter contract.InvitePrompter,
	bufferSize int) *Router {
	r := &Router{
		log:      log,
		registry: registry,
		rooms:    rooms,
		relay:    relay,
		prompter: prompter,
		queue:    make(chan *event.Event, bufferSize),
	}
	r.ownStatus.Store(int32(domain.Offline))
	return r
}

// AddSink registers a transcript render collaborator. Sinks receive entries
// in arrival order, one call per entry.
func (r *Router) AddSink(sinks ...contract.TranscriptSink) {
	r.sinks = append(r.sinks, sinks...)
}

// SetHistory wires the collaborator that replays persisted transcripts into
// freshly created conversations.
func (r *Router) SetHistory(history contract.TranscriptHistory) {
	r.history = history
}

func (r *Router) Registry() *Registry { return r.registry }

// OwnStatus is the application-wide presence, updated when any backend
// acknowledges a status change. Written on the router goroutine, readable
// from any other.
func (r *Router) OwnStatus() domain.Status {
	return domain.Status(r.ownStatus.Load())
}

// RemoveSession retires an account's session by queueing the teardown behind
// events already posted, so entity disposal runs on the router goroutine and
// never races an in-flight dispatch. This is the only way to remove a live
// session from another goroutine.
func (r *Router) RemoveSession(instance int64) {
	r.Post(event.New(event.AccountRemoved).WithInstance(instance))
}

// Post enqueues an event for the router goroutine. Full queue drops the
// event; the bus is at-most-once end to end.
func (r *Router) Post(ev *event.Event) {
	if ev == nil {
		return
	}
	select {
	case r.queue <- ev:
	default:
		r.log.Warn(fmt.Sprintf("Router queue full, dropping %s", ev.Kind))
	}
}

// Run drains the queue until the context is canceled.
func (r *Router) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-r.queue:
			r.Dispatch(ev)
		}
	}
}

// Dispatch decodes the event kind and runs its case. The return value tells
// the caller whether the event was consumed here or should pass through to
// presentation observers.
//
// Every failure mode is local: malformed events are dropped per case,
// unroutable events are dropped with a debug line, and no case may stop the
// loop.
func (r *Router) Dispatch(ev *event.Event) bool {
	if ev == nil {
		return true
	}

	if err := event.Validate(ev); err != nil {
		if stderrors.Is(err, errors.ErrUnknownEventKind) {
			return false
		}
		r.log.Debug("Dropping malformed event", "error", err)
		return true
	}

	switch ev.Kind {
	case event.SetOwnStatus, event.JoinRoom:
		r.forwardToSession(ev)

	case event.OwnStatusSet:
		r.ownStatus.Store(ev.Int32("status"))
		r.NotifyInteger(domain.IntStatus, ev.Int32("status"))

	case event.StatusSet:
		user := r.ensureUser(ev)
		if user == nil {
			break
		}
		user.SetNotifyStatus(domain.Status(ev.Int32("status")))
		if message, ok := ev.LookupString("message"); ok {
			user.SetNotifyPersonalStatus(message)
		}

	case event.ContactList:
		session := r.sessionFor(ev)
		if session == nil {
			break
		}
		for _, id := range ev.Strings("user_id") {
			r.ensureContactID(id, session)
		}
		return true

	case event.ContactInfo:
		contact := r.ensureContact(ev)
		if contact == nil {
			break
		}
		if name := ev.String("user_name"); name != "" {
			contact.SetNotifyName(name)
		}
		if message, ok := ev.LookupString("message"); ok {
			contact.SetNotifyPersonalStatus(message)
		}

	case event.OwnContactInfo:
		contact := r.ensureContact(ev)
		if contact == nil {
			break
		}
		r.sessionFor(ev).SetOwnID(contact.ID())

	case event.ExtendedContactInfo:
		contact := r.ensureContact(ev)
		if contact == nil || contact.Name() != "" {
			break
		}
		if name := ev.String("full_name"); name != "" {
			contact.SetNotifyName(name)
		} else if name := ev.String("user_name"); name != "" {
			contact.SetNotifyName(name)
		}

	case event.AvatarSet:
		user := r.ensureUser(ev)
		if user == nil {
			break
		}
		ref, _ := ev.LookupRef("ref")
		user.SetNotifyAvatar(ref)

	case event.CreateChat:
		session := r.sessionFor(ev)
		if session == nil {
			break
		}
		if contact := session.ContactByID(ev.String("user_id")); contact != nil {
			session.PostEvent(ev)
		}

	case event.ChatCreated:
		conversation := r.ensureConversation(ev)
		user := r.ensureUser(ev)
		if conversation != nil && user != nil {
			conversation.AddUser(user)
		}

	case event.RoomJoined:
		conversation := r.ensureConversation(ev)
		if conversation == nil {
			break
		}
		r.cacheRoom(conversation)
		r.fanout(ev.Instance, conversation.ID(), conversation.Deliver(ev))

	case event.RoomCreated:
		conversation := r.ensureConversation(ev)
		if conversation == nil {
			break
		}
		r.cacheRoom(conversation)
		r.fanout(ev.Instance, conversation.ID(), conversation.Deliver(ev))

	case event.RoomLeft:
		session := r.sessionFor(ev)
		if session == nil {
			break
		}
		chatID := ev.String("chat_id")
		if session.ConversationByID(chatID) == nil {
			break
		}
		session.RemoveConversation(chatID)
		if err := r.rooms.RemoveRoom(session.ProtocolName(), chatID); err != nil {
			r.log.Warn("Room cache removal failed", "chat_id", chatID, "error", err)
		}

	case event.RoomParticipants:
		r.roomParticipants(ev)

	case event.ParticipantJoined:
		conversation := r.ensureConversation(ev)
		user := r.ensureUser(ev)
		if conversation == nil || user == nil {
			break
		}
		conversation.AddUser(user)
		r.fanout(ev.Instance, conversation.ID(), conversation.Deliver(ev))

	case event.ParticipantLeft, event.ParticipantKicked, event.ParticipantBanned:
		conversation := r.ensureConversation(ev)
		if conversation == nil {
			break
		}
		conversation.RemoveUser(ev.String("user_id"))
		r.fanout(ev.Instance, conversation.ID(), conversation.Deliver(ev))

	case event.RoleChanged:
		conversation := r.ensureConversation(ev)
		role := roleFrom(ev)
		if conversation == nil || role == nil {
			break
		}
		conversation.SetRole(ev.String("user_id"), role)

	case event.RoomNameSet:
		conversation := r.ensureConversation(ev)
		name, ok := ev.LookupString("chat_name")
		if conversation == nil || !ok {
			break
		}
		conversation.SetNotifyName(name)

	case event.RoomSubjectSet:
		conversation := r.ensureConversation(ev)
		subject, ok := ev.LookupString("subject")
		if conversation == nil || !ok {
			break
		}
		conversation.SetNotifySubject(subject)

	case event.SendMessage:
		conversation := r.ensureConversation(ev)
		if conversation == nil || conversation.Session() == nil {
			break
		}
		conversation.Session().PostEvent(ev)

	case event.MessageSent, event.MessageReceived, event.LogsReceived:
		conversation := r.ensureConversation(ev)
		if conversation == nil {
			break
		}
		r.fanout(ev.Instance, conversation.ID(), conversation.Deliver(ev))

	case event.RoomInviteReceived:
		return r.roomInvite(ev)

	case event.UserStartedTyping, event.UserStoppedTyping:
		return true

	case event.Progress:
		r.relay.Progress(ev.String("protocol"), ev.String("title"),
			ev.String("message"), ev.Float("progress"))

	case event.Notification:
		r.relay.Notify(ev.String("protocol"), ev.Int32("type"),
			ev.String("title"), ev.String("message"))

	case event.ProtocolReady:
		r.protocolReady(ev)

	case event.AccountRemoved:
		r.registry.Remove(ev.Instance)
		return true
	}

	return false
}

// forwardToSession relays an outgoing event, unmodified, to the queue of the
// session its instance field names. Events without a resolvable session are
// dropped; that is routine during logout races, not an error.
func (r *Router) forwardToSession(ev *event.Event) {
	session := r.sessionFor(ev)
	if session == nil {
		r.log.Debug("Unroutable event", "kind", ev.Kind.String(), "instance", ev.Instance)
		return
	}
	session.PostEvent(ev)
}

func (r *Router) roomParticipants(ev *event.Event) {
	conversation := r.ensureConversation(ev)
	session := r.sessionFor(ev)
	if conversation == nil || session == nil {
		return
	}

	ids := ev.Strings("user_id")
	names := ev.Strings("user_name")

	for i, id := range ids {
		user := r.ensureUserID(id, session)
		if user == nil {
			continue
		}
		if i < len(names) && names[i] != "" {
			user.SetNotifyName(names[i])
		}
		conversation.AddUser(user)
	}
}

func (r *Router) roomInvite(ev *event.Event) bool {
	session := r.sessionFor(ev)
	if session == nil {
		return true
	}

	chatID := ev.String("chat_id")
	userID := ev.String("user_id")
	body := ev.String("body")

	chatName := ev.String("chat_name")
	if chatName == "" {
		chatName = chatID
	}

	userName := userID
	if user := r.ensureUser(ev); user != nil {
		userName = user.DisplayName()
	}

	alert := "You've been invited to %room%."
	if userID != "" {
		alert = "%user% has invited you to %room%."
	}
	if body != "" {
		alert += "\n\n\"%body%\""
	}
	alert = strings.ReplaceAll(alert, "%user%", userName)
	alert = strings.ReplaceAll(alert, "%room%", chatName)
	alert = strings.ReplaceAll(alert, "%body%", body)

	accept := event.New(event.RoomInviteAccept).
		WithInstance(session.Instance()).
		WithString("chat_id", chatID)
	reject := event.New(event.RoomInviteRefuse).
		WithInstance(session.Instance()).
		WithString("chat_id", chatID)

	r.prompter.PromptInvite("Invitation received", alert, accept, reject, session.PostEvent)
	return false
}

func (r *Router) protocolReady(ev *event.Event) {
	session := r.sessionFor(ev)
	if session == nil {
		return
	}

	content := strings.ReplaceAll("%user% has connected!", "%user%", session.ProtocolName())
	r.relay.Notify(session.ProtocolName(), contract.NotifyInfo, "Connected", content)

	// Rejoin cached rooms: every remembered identifier becomes a synthesized
	// join event re-entering the normal dispatch path.
	cached, err := r.rooms.Rooms(session.ProtocolName())
	if err != nil {
		r.log.Warn("Room cache read failed", "protocol", session.ProtocolName(), "error", err)
		return
	}
	for _, chatID := range cached {
		r.Dispatch(event.New(event.JoinRoom).
			WithInstance(session.Instance()).
			WithString("chat_id", chatID))
	}
}

func (r *Router) cacheRoom(conversation *domain.Conversation) {
	session := conversation.Session()
	if session == nil {
		return
	}
	if err := r.rooms.AddRoom(session.ProtocolName(), conversation.ID()); err != nil {
		r.log.Warn("Room cache write failed", "chat_id", conversation.ID(), "error", err)
	}
}

func (r *Router) fanout(instance int64, chatID string, entries []domain.Message) {
	for _, entry := range entries {
		for _, sink := range r.sinks {
			if err := sink.Append(instance, chatID, entry); err != nil {
				r.log.Warn("Transcript sink failed", "chat_id", chatID, "error", err)
			}
		}
	}
}

func (r *Router) sessionFor(ev *event.Event) *Session {
	if ev == nil || ev.Instance == 0 {
		return nil
	}
	return r.registry.Get(ev.Instance)
}

// ensureContact looks a contact up by (session, user_id) and lazily creates
// it on first sight. At most one live contact exists per pair, no matter how
// often first-seen events repeat.
func (r *Router) ensureContact(ev *event.Event) *domain.Contact {
	session := r.sessionFor(ev)
	if session == nil {
		return nil
	}
	return r.ensureContactID(ev.String("user_id"), session)
}

func (r *Router) ensureContactID(id string, session *Session) *domain.Contact {
	if id == "" {
		return nil
	}
	contact := session.ContactByID(id)
	if contact == nil {
		contact = domain.NewContact(id)
		contact.SetSession(session)
		session.AddContact(contact)
	}
	return contact
}

func (r *Router) ensureUser(ev *event.Event) *domain.User {
	session := r.sessionFor(ev)
	if session == nil {
		return nil
	}
	return r.ensureUserID(ev.String("user_id"), session)
}

func (r *Router) ensureUserID(id string, session *Session) *domain.User {
	if id == "" {
		return nil
	}
	user := session.UserByID(id)
	if user == nil {
		user = domain.NewUser(id)
		user.SetSession(session)
		session.AddUser(user)
	}
	return user
}

// ensureConversation mirrors ensureContact for chat identifiers. A freshly
// created conversation starts with the session's own contact as its first
// member when that contact is known.
func (r *Router) ensureConversation(ev *event.Event) *domain.Conversation {
	session := r.sessionFor(ev)
	if session == nil {
		return nil
	}

	chatID := ev.String("chat_id")
	if chatID == "" {
		return nil
	}

	conversation := session.ConversationByID(chatID)
	if conversation == nil {
		conversation = domain.NewConversation(chatID)
		conversation.SetSession(session)
		r.restoreHistory(conversation, session)
		if own := session.ContactByID(session.OwnID()); own != nil {
			conversation.AddUser(&own.User)
		}
		session.AddConversation(conversation)
	}
	return conversation
}

// restoreHistory seeds a freshly created conversation with its persisted
// backlog. Live entries delivered afterwards append behind it.
func (r *Router) restoreHistory(conversation *domain.Conversation, session *Session) {
	if r.history == nil {
		return
	}
	entries, err := r.history.History(session.Instance(), conversation.ID())
	if err != nil {
		r.log.Warn("Transcript history read failed",
			"chat_id", conversation.ID(), "error", err)
		return
	}
	conversation.RestoreLog(entries)
}

func roleFrom(ev *event.Event) *domain.Role {
	title, okTitle := ev.LookupString("role_title")
	perms, okPerms := ev.LookupInt32("role_perms")
	priority, okPriority := ev.LookupInt32("role_priority")

	if !okTitle || !okPerms || !okPriority {
		return nil
	}
	return domain.NewRole(title, perms, priority)
}
