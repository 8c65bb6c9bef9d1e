package protocol

import (
	"github.com/stretchr/testify/require"
	"im-core/domain/event"
	"testing"
)

func startLoopback(t *testing.T) (*Loopback, *[]*event.Event) {
	t.Helper()
	var emitted []*event.Event
	loopback := NewLoopback("loopback", "me", "Me")
	err := loopback.Start(func(ev *event.Event) { emitted = append(emitted, ev) })
	require.NoError(t, err)
	return loopback, &emitted
}

func TestLoopback_Start_AnnouncesIdentityAndReadiness(t *testing.T) {
	req := require.New(t)
	_, emitted := startLoopback(t)

	req.Len(*emitted, 3)
	req.Equal(event.OwnContactInfo, (*emitted)[0].Kind)
	req.Equal("me", (*emitted)[0].String("user_id"))
	req.Equal(event.ContactInfo, (*emitted)[1].Kind)
	req.Equal(event.ProtocolReady, (*emitted)[2].Kind)
}

func TestLoopback_SendMessage_EchoesBack(t *testing.T) {
	req := require.New(t)
	loopback, emitted := startLoopback(t)
	*emitted = (*emitted)[:0]

	req.NoError(loopback.Process(event.New(event.SendMessage).
		WithString("chat_id", "lobby").
		WithString("body", "hello")))

	req.Len(*emitted, 2)

	sent := (*emitted)[0]
	req.Equal(event.MessageSent, sent.Kind)
	req.Equal("me", sent.String("user_id"))
	req.Equal("hello", sent.String("body"))

	echo := (*emitted)[1]
	req.Equal(event.MessageReceived, echo.Kind)
	req.Equal("lobby-echo", echo.String("user_id"))
	req.Equal("hello", echo.String("body"))
}

func TestLoopback_JoinAndStatus(t *testing.T) {
	req := require.New(t)
	loopback, emitted := startLoopback(t)
	*emitted = (*emitted)[:0]

	req.NoError(loopback.Process(event.New(event.JoinRoom).
		WithString("chat_id", "lobby")))
	req.NoError(loopback.Process(event.New(event.SetOwnStatus).
		WithInt32("status", 1)))

	req.Len(*emitted, 2)
	req.Equal(event.RoomJoined, (*emitted)[0].Kind)
	req.Equal("lobby", (*emitted)[0].String("chat_id"))
	req.Equal(event.OwnStatusSet, (*emitted)[1].Kind)
	req.Equal(int32(1), (*emitted)[1].Int32("status"))
}

func TestLoopback_CreateChat(t *testing.T) {
	req := require.New(t)
	loopback, emitted := startLoopback(t)
	*emitted = (*emitted)[:0]

	req.NoError(loopback.Process(event.New(event.CreateChat).
		WithString("user_id", "bob")))

	req.Len(*emitted, 1)
	req.Equal(event.ChatCreated, (*emitted)[0].Kind)
	req.Equal("dm-bob", (*emitted)[0].String("chat_id"))
	req.Equal("bob", (*emitted)[0].String("user_id"))
}

func TestLoopback_Shutdown_StopsEmitting(t *testing.T) {
	req := require.New(t)
	loopback, emitted := startLoopback(t)
	*emitted = (*emitted)[:0]

	req.NoError(loopback.Shutdown())
	req.NoError(loopback.Process(event.New(event.JoinRoom).
		WithString("chat_id", "lobby")))

	req.Empty(*emitted)
}
