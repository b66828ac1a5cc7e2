package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/itm-clinic/clinic-client/client"
)

// sentryHub is the part of *sentry.Hub the reporter uses.
type sentryHub interface {
	WithScope(f func(scope *sentry.Scope))
	CaptureException(exception error) *sentry.EventID
	Flush(timeout time.Duration) bool
}

// Sentry reports unexpected API failures.
type Sentry struct {
	hub sentryHub
}

var _ client.ErrorReporter = (*Sentry)(nil)

// InitSentry creates a hub for dsn. An empty dsn yields a reporter that
// drops everything.
func InitSentry(dsn, environment, release string) (*Sentry, error) {
	sc, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return nil, err
	}
	return NewSentry(sentry.NewHub(sc, sentry.NewScope())), nil
}

func NewSentry(hub sentryHub) *Sentry {
	return &Sentry{hub: hub}
}

func (s *Sentry) Report(_ context.Context, err *client.Error) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("kind", err.Kind.String())
		scope.SetTag("status", strconv.Itoa(err.StatusCode))
		scope.SetTag("method", err.Method)
		scope.SetTag("path", err.Path)
		if err.Code != "" {
			scope.SetTag("code", err.Code)
		}
		s.hub.CaptureException(err)
	})
}

// Flush waits for queued events.
func (s *Sentry) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}
