// Package domain contains the entity directory of the messaging core:
// users, contacts, conversations and roles, all keyed by protocol-scoped
// string identifiers unique within their owning session.
package domain

// Status is a user's presence as reported by its protocol backend.
type Status int32

const (
	Online Status = iota + 1
	Away
	ExtendedAway
	DoNotDisturb
	Invisible
	Offline
)

func (s Status) String() string {
	switch s {
	case Online:
		return "online"
	case Away:
		return "away"
	case ExtendedAway:
		return "extended away"
	case DoNotDisturb:
		return "do not disturb"
	case Invisible:
		return "invisible"
	case Offline:
		return "offline"
	}
	return "unknown"
}
