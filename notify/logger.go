package notify

import (
	"github.com/itm-clinic/clinic-client/client"
	"github.com/rs/zerolog"
)

// Logger writes toasts to a zerolog logger.
type Logger struct {
	logger zerolog.Logger
}

var _ client.Notifier = Logger{}

func NewLogger(logger zerolog.Logger) Logger {
	return Logger{logger: logger}
}

func (l Logger) Notify(t client.Toast) {
	ev := l.logger.Info()
	if t.Variant == client.VariantDestructive {
		ev = l.logger.Warn()
	}
	ev.Str("title", t.Title).Msg(t.Description)
}
