package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"im-core/domain"
)

// DiskMessage is the persisted shape of one transcript entry.
type DiskMessage struct {
	ID         uuid.UUID
	Instance   int64
	ChatID     string
	SenderID   string
	SenderName string
	Body       string
	System     bool
	At         time.Time
}

type MessageRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

// NewMessageRepository stores transcripts under time-ordered keys so reads
// come back in arrival order. A nil limit means unbounded reads.
func NewMessageRepository(db *badger.DB, log *slog.Logger, limit *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limit: limit}
}

func logKey(dm DiskMessage) []byte {
	return []byte(fmt.Sprintf("log:%d:%s:%020d:%s",
		dm.Instance, dm.ChatID, dm.At.UnixNano(), dm.ID))
}

func (r *MessageRepository) StoreMessage(dm DiskMessage) error {
	data, err := json.Marshal(dm)
	if err != nil {
		return fmt.Errorf("encoding transcript entry: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(logKey(dm), data)
	})
}

// Logs returns the stored transcript of one conversation, oldest first.
func (r *MessageRepository) Logs(instance int64, chatID string) ([]DiskMessage, error) {
	var entries []DiskMessage
	prefix := []byte(fmt.Sprintf("log:%d:%s:", instance, chatID))

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(entries) >= *r.limit {
				break
			}
			err := it.Item().Value(func(v []byte) error {
				var dm DiskMessage
				if err := json.Unmarshal(v, &dm); err != nil {
					return fmt.Errorf("decoding transcript entry: %w", err)
				}
				entries = append(entries, dm)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// History returns the stored transcript in domain shape, oldest first.
func (r *MessageRepository) History(instance int64, chatID string) ([]domain.Message, error) {
	entries, err := r.Logs(instance, chatID)
	if err != nil {
		return nil, err
	}
	return Messages(entries), nil
}

// Messages converts stored entries back to their domain shape.
func Messages(entries []DiskMessage) []domain.Message {
	return lo.Map(entries, func(dm DiskMessage, _ int) domain.Message {
		return FromDiskMessage(dm)
	})
}

func FromDiskMessage(dm DiskMessage) domain.Message {
	return domain.Message{
		ID:         dm.ID,
		SenderID:   dm.SenderID,
		SenderName: dm.SenderName,
		Body:       dm.Body,
		Color:      domain.ColorFor(dm.SenderID),
		At:         dm.At,
		System:     dm.System,
	}
}

func ToDiskMessage(instance int64, chatID string, msg domain.Message) DiskMessage {
	return DiskMessage{
		ID:         msg.ID,
		Instance:   instance,
		ChatID:     chatID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Body:       msg.Body,
		System:     msg.System,
		At:         msg.At,
	}
}
