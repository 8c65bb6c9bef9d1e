package storage

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"im-core/domain"
	"log/slog"
	"testing"
	"time"
)

func TestMessageRepository_StoreAndReadInOrder(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	instance := int64(1)
	chatID := "room1"
	at := time.Now().UTC()

	diskMessages := []DiskMessage{
		{ID: uuid.New(), Instance: instance, ChatID: chatID, SenderID: "alice", SenderName: "Alice", Body: "first", At: at},
		{ID: uuid.New(), Instance: instance, ChatID: chatID, SenderID: "bob", SenderName: "Bob", Body: "second", At: at.Add(1 * time.Minute)},
		{ID: uuid.New(), Instance: instance, ChatID: chatID, SenderID: "clara", SenderName: "Clara", Body: "third", At: at.Add(2 * time.Minute)},
	}
	for _, dm := range diskMessages {
		req.NoError(repository.StoreMessage(dm))
	}

	fetched, err := repository.Logs(instance, chatID)
	req.NoError(err)
	req.Len(fetched, len(diskMessages))
	req.Equal(diskMessages, fetched)
}

func TestMessageRepository_Limit(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openTestDB(t), slog.Default(), &limit)
	instance := int64(1)
	chatID := "room1"
	at := time.Now().UTC()

	for i, body := range []string{"first", "second", "third"} {
		req.NoError(repository.StoreMessage(DiskMessage{
			ID:       uuid.New(),
			Instance: instance,
			ChatID:   chatID,
			SenderID: "alice",
			Body:     body,
			At:       at.Add(time.Duration(i) * time.Minute),
		}))
	}

	fetched, err := repository.Logs(instance, chatID)
	req.NoError(err)
	req.Len(fetched, limit)
	req.Equal("first", fetched[0].Body)
	req.Equal("second", fetched[1].Body)
}

func TestMessageRepository_IsolatesConversations(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	at := time.Now().UTC()

	req.NoError(repository.StoreMessage(DiskMessage{
		ID: uuid.New(), Instance: 1, ChatID: "room1", SenderID: "alice", Body: "here", At: at}))
	req.NoError(repository.StoreMessage(DiskMessage{
		ID: uuid.New(), Instance: 1, ChatID: "room2", SenderID: "alice", Body: "there", At: at}))
	req.NoError(repository.StoreMessage(DiskMessage{
		ID: uuid.New(), Instance: 2, ChatID: "room1", SenderID: "alice", Body: "elsewhere", At: at}))

	fetched, err := repository.Logs(1, "room1")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("here", fetched[0].Body)
}

func TestMessageRepository_History_ReturnsDomainMessages(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	instance := int64(1)
	chatID := "room1"
	at := time.Now().UTC()

	first := domain.NewUserMessage("alice", "Alice", "first", at)
	second := domain.NewUserMessage("bob", "Bob", "second", at.Add(time.Minute))
	req.NoError(repository.StoreMessage(ToDiskMessage(instance, chatID, first)))
	req.NoError(repository.StoreMessage(ToDiskMessage(instance, chatID, second)))

	restored, err := repository.History(instance, chatID)
	req.NoError(err)
	req.Equal([]domain.Message{first, second}, restored)

	// An empty transcript restores to nothing
	restored, err = repository.History(instance, "empty-room")
	req.NoError(err)
	req.Empty(restored)
}

func TestDiskMessage_Conversions(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()
	msg := domain.NewUserMessage("alice", "Alice", "hello", at)

	dm := ToDiskMessage(7, "room1", msg)
	req.Equal(msg.ID, dm.ID)
	req.Equal(int64(7), dm.Instance)
	req.Equal("room1", dm.ChatID)
	req.False(dm.System)

	back := FromDiskMessage(dm)
	req.Equal(msg, back)

	restored := Messages([]DiskMessage{dm})
	req.Len(restored, 1)
	req.Equal(msg, restored[0])
}
