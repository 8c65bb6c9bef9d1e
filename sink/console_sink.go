package sink

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"im-core/domain"
)

// palette maps a message's color hint to a terminal color. Slot 0 (system
// lines) renders dim.
var palette = []color.Color{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgRed,
	color.FgLightCyan,
	color.FgLightGreen,
	color.FgLightYellow,
}

// ConsoleSink renders transcript entries to a writer with per-sender
// colors, one line per entry.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) Append(_ int64, chatID string, msg domain.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg.System {
		_, err := fmt.Fprintf(c.out, "[%s] %s\n",
			chatID, color.Gray.Render(msg.Body))
		return err
	}

	sender := palette[int(msg.Color)%len(palette)].Render(msg.SenderName)
	_, err := fmt.Fprintf(c.out, "[%s] %s <%s> %s\n",
		chatID, msg.At.Format("15:04:05"), sender, msg.Body)
	return err
}
