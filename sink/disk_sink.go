// Package sink contains transcript render collaborators fed by the router.
package sink

import (
	"log/slog"

	"im-core/domain"
	"im-core/storage"
)

// DiskSink persists every transcript entry through the message repository.
type DiskSink struct {
	repository *storage.MessageRepository
	log        *slog.Logger
}

func NewDiskSink(repository *storage.MessageRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Append(instance int64, chatID string, msg domain.Message) error {
	return d.repository.StoreMessage(storage.ToDiskMessage(instance, chatID, msg))
}
