package domain

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestColorFor_StableAndBounded(t *testing.T) {
	req := require.New(t)

	// Same sender, same slot
	req.Equal(ColorFor("alice"), ColorFor("alice"))

	// User slots stay inside the palette and never use the system slot
	for _, id := range []string{"alice", "bob", "clara", "dave"} {
		slot := ColorFor(id)
		req.GreaterOrEqual(slot, uint8(1))
		req.LessOrEqual(slot, uint8(paletteSize))
	}

	// Slot 0 is reserved for system lines
	req.Equal(uint8(0), ColorFor(""))
}

func TestNewSystemMessage(t *testing.T) {
	req := require.New(t)
	at := time.Now()

	msg := NewSystemMessage("** Alice has joined the room.", at)

	req.True(msg.System)
	req.Empty(msg.SenderID)
	req.Empty(msg.SenderName)
	req.Equal(uint8(0), msg.Color)
	req.Equal(at, msg.At)
	req.NotEqual(msg.ID, NewSystemMessage("another", at).ID)
}

func TestNewUserMessage(t *testing.T) {
	req := require.New(t)
	at := time.Now()

	msg := NewUserMessage("alice", "Alice", "hello", at)

	req.False(msg.System)
	req.Equal("alice", msg.SenderID)
	req.Equal("Alice", msg.SenderName)
	req.Equal(ColorFor("alice"), msg.Color)
}
