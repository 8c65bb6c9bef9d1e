package sink

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"im-core/domain"
	"im-core/storage"
	"log/slog"
	"testing"
	"time"
)

func TestDiskSink_PersistsThroughRepository(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := storage.NewMessageRepository(db, slog.Default(), nil)
	disk := NewDiskSink(repository, slog.Default())

	at := time.Now().UTC()
	msg := domain.NewUserMessage("alice", "Alice", "hello", at)
	req.NoError(disk.Append(7, "room1", msg))

	stored, err := repository.Logs(7, "room1")
	req.NoError(err)
	req.Len(stored, 1)
	req.Equal(msg, storage.FromDiskMessage(stored[0]))
}
