package event

import (
	"fmt"

	"im-core/errors"
)

type fieldType int

const (
	stringField fieldType = iota
	listField
	int32Field
	floatField
)

type requirement struct {
	key string
	typ fieldType
}

// schema lists the fields an event must carry before its dispatch case may
// run. Optional fields (user_name, message, when, ...) are absent on purpose;
// the cases degrade gracefully without them.
var schema = map[Kind][]requirement{
	SetOwnStatus:        {{"status", int32Field}},
	OwnStatusSet:        {{"status", int32Field}, {"protocol", stringField}},
	StatusSet:           {{"status", int32Field}, {"user_id", stringField}},
	ContactList:         {{"user_id", listField}},
	ContactInfo:         {{"user_id", stringField}},
	OwnContactInfo:      {{"user_id", stringField}},
	ExtendedContactInfo: {{"user_id", stringField}},
	AvatarSet:           {{"user_id", stringField}},
	CreateChat:          {{"user_id", stringField}},
	ChatCreated:         {{"chat_id", stringField}},
	JoinRoom:            {{"chat_id", stringField}},
	RoomJoined:          {{"chat_id", stringField}},
	RoomLeft:            {{"chat_id", stringField}},
	RoomCreated:         {{"chat_id", stringField}},
	RoomParticipants:    {{"chat_id", stringField}, {"user_id", listField}},
	ParticipantJoined:   {{"chat_id", stringField}, {"user_id", stringField}},
	ParticipantLeft:     {{"chat_id", stringField}, {"user_id", stringField}},
	ParticipantKicked:   {{"chat_id", stringField}, {"user_id", stringField}},
	ParticipantBanned:   {{"chat_id", stringField}, {"user_id", stringField}},
	RoleChanged:         {{"chat_id", stringField}, {"user_id", stringField}},
	RoomNameSet:         {{"chat_id", stringField}},
	RoomSubjectSet:      {{"chat_id", stringField}},
	SendMessage:         {{"chat_id", stringField}, {"body", stringField}},
	MessageSent:         {{"chat_id", stringField}, {"body", stringField}},
	MessageReceived:     {{"chat_id", stringField}, {"body", stringField}},
	LogsReceived:        {{"chat_id", stringField}, {"body", stringField}},
	RoomInviteReceived:  {{"chat_id", stringField}},
	RoomInviteAccept:    {{"chat_id", stringField}},
	RoomInviteRefuse:    {{"chat_id", stringField}},
	UserStartedTyping:   {{"user_id", stringField}},
	UserStoppedTyping:   {{"user_id", stringField}},
	Progress:            {{"protocol", stringField}, {"title", stringField}, {"message", stringField}, {"progress", floatField}},
	Notification:        {{"protocol", stringField}, {"type", int32Field}, {"title", stringField}, {"message", stringField}},
	ProtocolReady:       nil,
	AccountRemoved:      nil,
}

// Validate checks an event against the per-kind required-field table.
// Kinds without an entry pass as-is; the router decides what to do with them.
func Validate(e *Event) error {
	requirements, ok := schema[e.Kind]
	if !ok && e.Kind.String() == "Unknown" {
		return fmt.Errorf("%w: %d", errors.ErrUnknownEventKind, e.Kind)
	}

	for _, r := range requirements {
		if !r.satisfiedBy(e) {
			return fmt.Errorf("%w: %s needs %q", errors.ErrMalformedEvent, e.Kind, r.key)
		}
	}
	return nil
}

func (r requirement) satisfiedBy(e *Event) bool {
	switch r.typ {
	case stringField:
		v, ok := e.LookupString(r.key)
		return ok && v != ""
	case listField:
		return len(e.Strings(r.key)) > 0
	case int32Field:
		_, ok := e.LookupInt32(r.key)
		return ok
	case floatField:
		_, ok := e.LookupFloat(r.key)
		return ok
	}
	return false
}
