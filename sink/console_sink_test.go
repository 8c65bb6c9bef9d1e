package sink

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"im-core/domain"
	"strings"
	"testing"
	"time"
)

func TestConsoleSink_RendersUserMessage(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	console := NewConsoleSink(&buf)

	at := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	msg := domain.NewUserMessage("alice", "Alice", "hello there", at)

	req.NoError(console.Append(1, "room1", msg))

	// Color escapes depend on the terminal; assert the stable parts only
	line := buf.String()
	req.True(strings.HasPrefix(line, "[room1] "))
	req.Contains(line, "15:04:05")
	req.Contains(line, "Alice")
	req.Contains(line, "hello there")
	req.True(strings.HasSuffix(line, "\n"))
}

func TestConsoleSink_RendersSystemLine(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	console := NewConsoleSink(&buf)

	msg := domain.NewSystemMessage("** Alice has joined the room.", time.Now())

	req.NoError(console.Append(1, "room1", msg))

	line := buf.String()
	req.True(strings.HasPrefix(line, "[room1] "))
	req.Contains(line, "** Alice has joined the room.")
	req.NotContains(line, "<")
}
