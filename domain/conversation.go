package domain

import (
	"strings"
	"time"

	"im-core/domain/event"
)

// Conversation represents a chat or room, keyed by a chat identifier unique
// within its owning session. It holds an ordered member set (unique by
// identity), a role per member where the protocol reports one, and the
// transcript log in arrival order.
type Conversation struct {
	Notifier

	id      string
	name    string
	subject string
	session SessionRef
	users   []*User
	roles   map[string]*Role
	log     []Message
}

func NewConversation(id string) *Conversation {
	return &Conversation{id: id, roles: make(map[string]*Role)}
}

func (c *Conversation) ID() string { return c.id }

func (c *Conversation) Name() string { return c.name }

// DisplayName falls back to the chat identifier while the room is unnamed.
func (c *Conversation) DisplayName() string {
	if c.name != "" {
		return c.name
	}
	return c.id
}

func (c *Conversation) Subject() string { return c.subject }

func (c *Conversation) Session() SessionRef { return c.session }

func (c *Conversation) SetSession(s SessionRef) { c.session = s }

func (c *Conversation) SetNotifyName(name string) {
	c.name = name
	c.NotifyString(StringRoomName, name)
}

func (c *Conversation) SetNotifySubject(subject string) {
	c.subject = subject
	c.NotifyString(StringRoomSubject, subject)
}

// AddUser appends a member. Adding a user already in the member set is a
// no-op for the set itself and reports false; callers still forward the
// triggering event to observers so a system line can be rendered.
func (c *Conversation) AddUser(u *User) bool {
	if u == nil {
		return false
	}
	if c.UserByID(u.ID()) != nil {
		return false
	}
	c.users = append(c.users, u)
	return true
}

func (c *Conversation) RemoveUser(id string) bool {
	for i, u := range c.users {
		if u.ID() == id {
			c.users = append(c.users[:i], c.users[i+1:]...)
			delete(c.roles, id)
			return true
		}
	}
	return false
}

func (c *Conversation) UserByID(id string) *User {
	for _, u := range c.users {
		if u.ID() == id {
			return u
		}
	}
	return nil
}

// Users returns a snapshot of the member set in join order.
func (c *Conversation) Users() []*User {
	snapshot := make([]*User, len(c.users))
	copy(snapshot, c.users)
	return snapshot
}

// SetRole replaces a member's role wholesale.
func (c *Conversation) SetRole(userID string, role *Role) {
	if role == nil {
		return
	}
	c.roles[userID] = role
}

func (c *Conversation) Role(userID string) *Role { return c.roles[userID] }

// RestoreLog seeds the transcript with persisted history. Restored entries
// precede anything already delivered.
func (c *Conversation) RestoreLog(entries []Message) {
	if len(entries) == 0 {
		return
	}
	restored := make([]Message, 0, len(entries)+len(c.log))
	restored = append(restored, entries...)
	c.log = append(restored, c.log...)
}

// Messages returns the transcript in arrival order.
func (c *Conversation) Messages() []Message {
	snapshot := make([]Message, len(c.log))
	copy(snapshot, c.log)
	return snapshot
}

// Deliver translates a conversation-scoped event into transcript entries,
// appends them to the log and returns them for fan-out to render sinks.
// Membership mutations are the router's job; Deliver only renders.
func (c *Conversation) Deliver(ev *event.Event) []Message {
	var entries []Message

	switch ev.Kind {
	case event.MessageReceived, event.MessageSent, event.LogsReceived:
		entries = c.appendableBodies(ev)
	case event.RoomJoined:
		entries = []Message{NewSystemMessage("** You joined the room.", time.Now())}
	case event.RoomCreated:
		entries = []Message{NewSystemMessage("** You created the room.", time.Now())}
	case event.ParticipantJoined:
		entries = c.memberLine(ev, "%user% has joined the room.",
			"%user% has joined the room (%body%).")
	case event.ParticipantLeft:
		entries = c.memberLine(ev, "%user% has left the room.",
			"%user% has left the room (%body%).")
	case event.ParticipantKicked:
		entries = c.memberLine(ev, "%user% was kicked.",
			"%user% was kicked (%body%).")
	case event.ParticipantBanned:
		entries = c.memberLine(ev, "%user% has been banned.",
			"%user% has been banned (%body%).")
	}

	c.log = append(c.log, entries...)
	return entries
}

func (c *Conversation) appendableBodies(ev *event.Event) []Message {
	bodies := ev.Strings("body")
	senders := ev.Strings("user_id")

	when := time.Now()
	if stamp, ok := ev.LookupInt64("when"); ok {
		when = time.Unix(stamp, 0)
	}

	var entries []Message
	for i, body := range bodies {
		senderID := ""
		if i < len(senders) {
			senderID = senders[i]
		}
		if senderID == "" {
			entries = append(entries, NewSystemMessage(body, when))
			continue
		}

		senderName := senderID
		if member := c.UserByID(senderID); member != nil {
			senderName = member.DisplayName()
		}
		entries = append(entries, NewUserMessage(senderID, senderName, body, when))
	}
	return entries
}

func (c *Conversation) memberLine(ev *event.Event, format, bodyFormat string) []Message {
	userID := ev.String("user_id")
	if userID == "" {
		return nil
	}

	userName := ev.String("user_name")
	if userName == "" {
		userName = userID
	}

	body := ev.String("body")
	line := "** " + format
	if body != "" {
		line = "** " + bodyFormat
		line = strings.ReplaceAll(line, "%body%", body)
	}
	line = strings.ReplaceAll(line, "%user%", userName)

	return []Message{NewSystemMessage(line, time.Now())}
}
