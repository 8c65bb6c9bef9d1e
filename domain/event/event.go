// Package event defines the typed records exchanged on the internal bus
// between protocol sessions and the router. An Event is a tagged bag of
// named fields, mirroring what protocol backends produce on the wire side.
package event

// Kind tags an Event with its dispatch case.
type Kind int32

const (
	SetOwnStatus Kind = iota + 1
	OwnStatusSet
	StatusSet
	ContactList
	ContactInfo
	OwnContactInfo
	ExtendedContactInfo
	AvatarSet
	CreateChat
	ChatCreated
	JoinRoom
	RoomJoined
	RoomLeft
	RoomCreated
	RoomParticipants
	ParticipantJoined
	ParticipantLeft
	ParticipantKicked
	ParticipantBanned
	RoleChanged
	RoomNameSet
	RoomSubjectSet
	SendMessage
	MessageSent
	MessageReceived
	LogsReceived
	RoomInviteReceived
	RoomInviteAccept
	RoomInviteRefuse
	UserStartedTyping
	UserStoppedTyping
	Progress
	Notification
	ProtocolReady
	AccountRemoved
)

var kindNames = map[Kind]string{
	SetOwnStatus:        "SetOwnStatus",
	OwnStatusSet:        "OwnStatusSet",
	StatusSet:           "StatusSet",
	ContactList:         "ContactList",
	ContactInfo:         "ContactInfo",
	OwnContactInfo:      "OwnContactInfo",
	ExtendedContactInfo: "ExtendedContactInfo",
	AvatarSet:           "AvatarSet",
	CreateChat:          "CreateChat",
	ChatCreated:         "ChatCreated",
	JoinRoom:            "JoinRoom",
	RoomJoined:          "RoomJoined",
	RoomLeft:            "RoomLeft",
	RoomCreated:         "RoomCreated",
	RoomParticipants:    "RoomParticipants",
	ParticipantJoined:   "ParticipantJoined",
	ParticipantLeft:     "ParticipantLeft",
	ParticipantKicked:   "ParticipantKicked",
	ParticipantBanned:   "ParticipantBanned",
	RoleChanged:         "RoleChanged",
	RoomNameSet:         "RoomNameSet",
	RoomSubjectSet:      "RoomSubjectSet",
	SendMessage:         "SendMessage",
	MessageSent:         "MessageSent",
	MessageReceived:     "MessageReceived",
	LogsReceived:        "LogsReceived",
	RoomInviteReceived:  "RoomInviteReceived",
	RoomInviteAccept:    "RoomInviteAccept",
	RoomInviteRefuse:    "RoomInviteRefuse",
	UserStartedTyping:   "UserStartedTyping",
	UserStoppedTyping:   "UserStoppedTyping",
	Progress:            "Progress",
	Notification:        "Notification",
	ProtocolReady:       "ProtocolReady",
	AccountRemoved:      "AccountRemoved",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is a tagged record with a flat set of named typed fields.
// Build one with the fluent With* setters, then treat it as immutable once
// it has been posted to another goroutine's queue.
type Event struct {
	Kind     Kind
	Instance int64

	strings map[string]string
	lists   map[string][]string
	ints    map[string]int32
	longs   map[string]int64
	floats  map[string]float64
	refs    map[string]any
}

func New(kind Kind) *Event {
	return &Event{Kind: kind}
}

func (e *Event) WithInstance(id int64) *Event {
	e.Instance = id
	return e
}

func (e *Event) WithString(key, value string) *Event {
	if e.strings == nil {
		e.strings = make(map[string]string)
	}
	e.strings[key] = value
	return e
}

func (e *Event) WithStrings(key string, values []string) *Event {
	if e.lists == nil {
		e.lists = make(map[string][]string)
	}
	e.lists[key] = values
	return e
}

func (e *Event) WithInt32(key string, value int32) *Event {
	if e.ints == nil {
		e.ints = make(map[string]int32)
	}
	e.ints[key] = value
	return e
}

func (e *Event) WithInt64(key string, value int64) *Event {
	if e.longs == nil {
		e.longs = make(map[string]int64)
	}
	e.longs[key] = value
	return e
}

func (e *Event) WithFloat(key string, value float64) *Event {
	if e.floats == nil {
		e.floats = make(map[string]float64)
	}
	e.floats[key] = value
	return e
}

func (e *Event) WithRef(key string, value any) *Event {
	if e.refs == nil {
		e.refs = make(map[string]any)
	}
	e.refs[key] = value
	return e
}

// String returns the named string field, or the first entry of a list field
// of the same name. Missing fields yield the empty string.
func (e *Event) String(key string) string {
	v, _ := e.LookupString(key)
	return v
}

func (e *Event) LookupString(key string) (string, bool) {
	if v, ok := e.strings[key]; ok {
		return v, true
	}
	if vs, ok := e.lists[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// Strings returns the named list field. A scalar string field of the same
// name is returned as a one-element list, the way repeated wire fields
// degrade to a single value.
func (e *Event) Strings(key string) []string {
	if vs, ok := e.lists[key]; ok {
		return vs
	}
	if v, ok := e.strings[key]; ok {
		return []string{v}
	}
	return nil
}

func (e *Event) Int32(key string) int32 {
	v, _ := e.LookupInt32(key)
	return v
}

func (e *Event) LookupInt32(key string) (int32, bool) {
	v, ok := e.ints[key]
	return v, ok
}

func (e *Event) Int64(key string) int64 {
	v, _ := e.LookupInt64(key)
	return v
}

func (e *Event) LookupInt64(key string) (int64, bool) {
	v, ok := e.longs[key]
	return v, ok
}

func (e *Event) Float(key string) float64 {
	v, _ := e.LookupFloat(key)
	return v
}

func (e *Event) LookupFloat(key string) (float64, bool) {
	v, ok := e.floats[key]
	return v, ok
}

func (e *Event) Ref(key string) any {
	v, _ := e.LookupRef(key)
	return v
}

func (e *Event) LookupRef(key string) (any, bool) {
	v, ok := e.refs[key]
	return v, ok
}

// Clone returns a deep copy safe to mutate independently of the original.
// Ref fields are copied by reference; their payloads are treated as immutable.
func (e *Event) Clone() *Event {
	c := &Event{Kind: e.Kind, Instance: e.Instance}
	for k, v := range e.strings {
		c.WithString(k, v)
	}
	for k, vs := range e.lists {
		copied := make([]string, len(vs))
		copy(copied, vs)
		c.WithStrings(k, copied)
	}
	for k, v := range e.ints {
		c.WithInt32(k, v)
	}
	for k, v := range e.longs {
		c.WithInt64(k, v)
	}
	for k, v := range e.floats {
		c.WithFloat(k, v)
	}
	for k, v := range e.refs {
		c.WithRef(k, v)
	}
	return c
}
