// Package projection builds local timelines from routed transcript entries.
// Handles ordering only; it does not emit events or touch UI directly.
package projection

import (
	"fmt"
	"sync"

	"im-core/domain"
)

// Timeline keeps an in-memory transcript per (instance, chat), in arrival
// order. Presentation layers and tests read it; the router writes it.
type Timeline struct {
	mu      sync.RWMutex
	entries map[string][]domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{entries: make(map[string][]domain.Message)}
}

func timelineKey(instance int64, chatID string) string {
	return fmt.Sprintf("%d:%s", instance, chatID)
}

func (t *Timeline) Append(instance int64, chatID string, msg domain.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := timelineKey(instance, chatID)
	t.entries[key] = append(t.entries[key], msg)
	return nil
}

// Entries returns the transcript of one conversation in arrival order.
func (t *Timeline) Entries(instance int64, chatID string) []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stored := t.entries[timelineKey(instance, chatID)]
	snapshot := make([]domain.Message, len(stored))
	copy(snapshot, stored)
	return snapshot
}
