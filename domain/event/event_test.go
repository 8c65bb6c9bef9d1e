package event

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEvent_ScalarAndListInterplay(t *testing.T) {
	req := require.New(t)

	// A list field answers scalar reads with its first element
	ev := New(ContactList).WithStrings("user_id", []string{"alice", "bob"})
	req.Equal("alice", ev.String("user_id"))
	req.Equal([]string{"alice", "bob"}, ev.Strings("user_id"))

	// A scalar field answers list reads as a one-element list
	ev = New(ContactInfo).WithString("user_id", "alice")
	req.Equal([]string{"alice"}, ev.Strings("user_id"))

	// Missing fields degrade to zero values
	req.Empty(ev.String("chat_id"))
	req.Nil(ev.Strings("chat_id"))
	_, ok := ev.LookupString("chat_id")
	req.False(ok)
}

func TestEvent_TypedFields(t *testing.T) {
	req := require.New(t)
	ev := New(Progress).
		WithInstance(42).
		WithString("protocol", "loopback").
		WithInt32("status", 3).
		WithInt64("when", 1700000000).
		WithFloat("progress", 0.5).
		WithRef("ref", "avatar-ref")

	req.Equal(int64(42), ev.Instance)
	req.Equal(int32(3), ev.Int32("status"))
	req.Equal(int64(1700000000), ev.Int64("when"))
	req.Equal(0.5, ev.Float("progress"))
	req.Equal("avatar-ref", ev.Ref("ref"))

	_, ok := ev.LookupInt64("missing")
	req.False(ok)
}

func TestEvent_Clone_Independent(t *testing.T) {
	req := require.New(t)
	original := New(RoomParticipants).
		WithInstance(7).
		WithString("chat_id", "room1").
		WithStrings("user_id", []string{"alice", "bob"}).
		WithInt32("status", 1)

	clone := original.Clone()

	req.Equal(original.Kind, clone.Kind)
	req.Equal(original.Instance, clone.Instance)
	req.Equal(original.String("chat_id"), clone.String("chat_id"))
	req.Equal(original.Strings("user_id"), clone.Strings("user_id"))

	// Mutating the clone leaves the original untouched
	clone.WithString("chat_id", "room2").WithInstance(8)
	clone.Strings("user_id")[0] = "mallory"

	req.Equal("room1", original.String("chat_id"))
	req.Equal(int64(7), original.Instance)
	req.Equal("alice", original.Strings("user_id")[0])
}

func TestKind_String(t *testing.T) {
	req := require.New(t)
	req.Equal("SendMessage", SendMessage.String())
	req.Equal("ProtocolReady", ProtocolReady.String())
	req.Equal("Unknown", Kind(9999).String())
}
