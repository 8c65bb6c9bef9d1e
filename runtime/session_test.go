package runtime

import (
	"context"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"im-core/domain"
	"im-core/domain/event"
	"im-core/mocks"
	"log/slog"
	"testing"
	"time"
)

func TestSession_ProcessesEventsInOrder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	protoMock := mocks.NewMockProtocol(ctrl)
	protoMock.EXPECT().Name().Return("mock").AnyTimes()

	processed := make(chan event.Kind, 3)
	protoMock.EXPECT().
		Process(gomock.Any()).
		DoAndReturn(func(ev *event.Event) error {
			processed <- ev.Kind
			return nil
		}).
		Times(3)

	session := NewSession(1, protoMock, 8, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	// When three events are posted
	session.PostEvent(event.New(event.SetOwnStatus).WithInt32("status", int32(domain.Online)))
	session.PostEvent(event.New(event.JoinRoom).WithString("chat_id", "room1"))
	session.PostEvent(event.New(event.SendMessage).
		WithString("chat_id", "room1").WithString("body", "hi"))

	// Then the backend sees them in posting order
	var kinds []event.Kind
	for i := 0; i < 3; i++ {
		select {
		case kind := <-processed:
			kinds = append(kinds, kind)
		case <-time.After(time.Second):
			req.Fail("session did not drain its queue in time")
		}
	}
	req.Equal([]event.Kind{event.SetOwnStatus, event.JoinRoom, event.SendMessage}, kinds)
}

func TestSession_Close_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	protoMock := mocks.NewMockProtocol(ctrl)
	protoMock.EXPECT().Name().Return("mock").AnyTimes()

	// The backend is shut down exactly once, however often Close is called
	protoMock.EXPECT().Shutdown().Return(nil).Times(1)

	session := NewSession(1, protoMock, 8, slog.Default())
	session.Close()
	session.Close()

	// And a closed session's Run returns immediately
	done := make(chan error, 1)
	go func() { done <- session.Run(context.Background()) }()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("Run should return for a closed session")
	}
}

func TestSession_PostEvent_AfterClose_Dropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	protoMock := mocks.NewMockProtocol(ctrl)
	protoMock.EXPECT().Name().Return("mock").AnyTimes()
	protoMock.EXPECT().Shutdown().Return(nil)

	session := NewSession(1, protoMock, 8, slog.Default())
	session.Close()

	// No Process expectation: the event must never reach the backend
	session.PostEvent(event.New(event.SendMessage).
		WithString("chat_id", "room1").WithString("body", "late"))
}

func TestSession_Close_ReleasesEntities(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	protoMock := mocks.NewMockProtocol(ctrl)
	protoMock.EXPECT().Name().Return("mock").AnyTimes()
	protoMock.EXPECT().Shutdown().Return(nil)

	session := NewSession(1, protoMock, 8, slog.Default())

	user := domain.NewUser("alice")
	user.SetSession(session)
	session.AddUser(user)

	contact := domain.NewContact("bob")
	contact.SetSession(session)
	session.AddContact(contact)

	conversation := domain.NewConversation("room1")
	conversation.SetSession(session)
	session.AddConversation(conversation)

	// When the session closes
	session.Close()

	// Then directories are empty and back-references are severed
	req.Empty(session.Users())
	req.Empty(session.Contacts())
	req.Empty(session.Conversations())
	req.Nil(user.Session())
	req.Nil(contact.Session())
	req.Nil(conversation.Session())
}

func TestSession_Directories_IgnoreEmptyIdentifiers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	protoMock := mocks.NewMockProtocol(ctrl)
	protoMock.EXPECT().Name().Return("mock").AnyTimes()

	session := NewSession(1, protoMock, 8, slog.Default())

	session.AddUser(nil)
	session.AddUser(domain.NewUser(""))
	session.AddContact(nil)
	session.AddConversation(domain.NewConversation(""))

	req.Empty(session.Users())
	req.Empty(session.Contacts())
	req.Empty(session.Conversations())
}
