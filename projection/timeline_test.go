package projection

import (
	"github.com/stretchr/testify/require"
	"im-core/domain"
	"testing"
	"time"
)

func TestTimeline_AppendAndRead(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()
	at := time.Now()

	first := domain.NewUserMessage("alice", "Alice", "first", at)
	second := domain.NewUserMessage("bob", "Bob", "second", at.Add(time.Second))

	req.NoError(timeline.Append(1, "room1", first))
	req.NoError(timeline.Append(1, "room1", second))

	entries := timeline.Entries(1, "room1")
	req.Len(entries, 2)
	req.Equal("first", entries[0].Body)
	req.Equal("second", entries[1].Body)
}

func TestTimeline_IsolatesConversations(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()
	at := time.Now()

	req.NoError(timeline.Append(1, "room1", domain.NewUserMessage("alice", "Alice", "here", at)))
	req.NoError(timeline.Append(1, "room2", domain.NewUserMessage("alice", "Alice", "there", at)))
	req.NoError(timeline.Append(2, "room1", domain.NewUserMessage("alice", "Alice", "elsewhere", at)))

	req.Len(timeline.Entries(1, "room1"), 1)
	req.Len(timeline.Entries(1, "room2"), 1)
	req.Len(timeline.Entries(2, "room1"), 1)
	req.Empty(timeline.Entries(2, "room2"))
}

func TestTimeline_Entries_ReturnsSnapshot(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()

	req.NoError(timeline.Append(1, "room1", domain.NewSystemMessage("** You joined the room.", time.Now())))

	snapshot := timeline.Entries(1, "room1")
	snapshot[0].Body = "mutated"

	req.Equal("** You joined the room.", timeline.Entries(1, "room1")[0].Body)
}
