package domain

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// paletteSize bounds the per-user color hints handed to render collaborators.
const paletteSize = 8

// Message is one immutable transcript entry. SenderName is empty for system
// lines ("** X joined the room."); Color is a stable per-sender palette hint.
type Message struct {
	ID         uuid.UUID
	SenderID   string
	SenderName string
	Body       string
	Color      uint8
	At         time.Time
	System     bool
}

func NewUserMessage(senderID, senderName, body string, at time.Time) Message {
	return Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		SenderName: senderName,
		Body:       body,
		Color:      ColorFor(senderID),
		At:         at,
	}
}

func NewSystemMessage(body string, at time.Time) Message {
	return Message{
		ID:     uuid.New(),
		Body:   body,
		At:     at,
		System: true,
	}
}

// ColorFor maps a sender identifier to a palette slot, deterministically and
// uniformly enough that two users in a small room rarely collide. Slot 0 is
// reserved for system lines.
func ColorFor(senderID string) uint8 {
	if senderID == "" {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(senderID))
	return uint8(h.Sum32()%paletteSize) + 1
}
