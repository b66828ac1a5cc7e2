package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/itm-clinic/clinic-client/client"
)

// Console prints toasts to a terminal.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	colour bool
}

var _ client.Notifier = (*Console)(nil)

func NewConsole(w io.Writer, colour bool) *Console {
	return &Console{w: w, colour: colour}
}

func (c *Console) Notify(t client.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := fmt.Sprintf(" %s ", t.Title)
	if c.colour {
		if colour, ok := variantColors[t.Variant]; ok {
			title = colour + title + ResetColor
		}
	}
	fmt.Fprintf(c.w, "%s %s\n", title, t.Description)
}
