package domain

import "im-core/domain/event"

// SessionRef is the weak back-reference an entity keeps to its owning
// protocol session. The session owns the entity; the entity never outlives
// it and never closes it.
type SessionRef interface {
	Instance() int64
	ProtocolName() string
	PostEvent(ev *event.Event)
}

// User represents a remote participant, keyed by a protocol-scoped
// identifier unique within its owning session.
type User struct {
	Notifier

	id             string
	name           string
	status         Status
	personalStatus string
	avatar         any
	session        SessionRef
}

func NewUser(id string) *User {
	return &User{id: id, status: Offline}
}

func (u *User) ID() string { return u.id }

func (u *User) Name() string { return u.name }

// DisplayName returns the name presented to render collaborators, falling
// back to the raw identifier while no name has been learned.
func (u *User) DisplayName() string {
	if u.name != "" {
		return u.name
	}
	return u.id
}

func (u *User) Status() Status { return u.status }

func (u *User) PersonalStatus() string { return u.personalStatus }

func (u *User) Avatar() any { return u.avatar }

func (u *User) Session() SessionRef { return u.session }

func (u *User) SetSession(s SessionRef) { u.session = s }

func (u *User) SetNotifyName(name string) {
	u.name = name
	u.NotifyString(StringName, name)
}

func (u *User) SetNotifyStatus(status Status) {
	u.status = status
	u.NotifyInteger(IntStatus, int32(status))
}

func (u *User) SetNotifyPersonalStatus(message string) {
	u.personalStatus = message
	u.NotifyString(StringPersonalStatus, message)
}

func (u *User) SetNotifyAvatar(ref any) {
	u.avatar = ref
	u.NotifyRef(RefAvatar, ref)
}
