// Package storage persists the small amounts of state the core keeps across
// runs: the joined-rooms cache and conversation transcripts, both in
// BadgerDB.
package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const roomKeyPrefix = "rooms:"

// RoomCache remembers which rooms were joined, keyed by protocol name, so
// the router can rejoin them when a protocol reports ready.
type RoomCache struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomCache(db *badger.DB, log *slog.Logger) *RoomCache {
	return &RoomCache{db: db, log: log}
}

func roomKey(protocol, chatID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", roomKeyPrefix, protocol, chatID))
}

func (c *RoomCache) AddRoom(protocol, chatID string) error {
	if protocol == "" || chatID == "" {
		return nil
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(roomKey(protocol, chatID), nil)
	})
}

// RemoveRoom forgets a room. Removing an unknown room is a no-op.
func (c *RoomCache) RemoveRoom(protocol, chatID string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(roomKey(protocol, chatID))
	})
}

// Rooms enumerates the cached chat identifiers for one protocol, in key
// order. Only keys are read; no value prefetch.
func (c *RoomCache) Rooms(protocol string) ([]string, error) {
	var rooms []string
	prefix := []byte(roomKeyPrefix + protocol + ":")

	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			rooms = append(rooms, strings.TrimPrefix(key, string(prefix)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerating cached rooms: %w", err)
	}

	return rooms, nil
}
