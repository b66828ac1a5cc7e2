package notify_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/notify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var expired = client.Toast{
	Title:       "Lỗi xác thực",
	Description: client.MsgSessionExpired,
	Variant:     client.VariantDestructive,
}

func TestConsole(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		notify.NewConsole(&buf, false).Notify(expired)
		require.Equal(t, " Lỗi xác thực  "+client.MsgSessionExpired+"\n", buf.String())
	})

	t.Run("colour", func(t *testing.T) {
		var buf bytes.Buffer
		notify.NewConsole(&buf, true).Notify(expired)
		require.True(t, strings.HasPrefix(buf.String(), notify.RedInverse+" Lỗi xác thực "+notify.ResetColor))
	})
}

func TestMethodLabel(t *testing.T) {
	require.Equal(t, " GET    ", notify.MethodLabel("GET", false))
	require.Equal(t, notify.Blue+" POST   "+notify.ResetColor, notify.MethodLabel("POST", true))
	require.Equal(t, notify.Gray+" HEAD   "+notify.ResetColor, notify.MethodLabel("HEAD", true))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLogger(zerolog.New(&buf))

	n.Notify(expired)
	n.Notify(client.Toast{Title: "Thành công", Description: "Đã hủy lịch hẹn"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"level":"warn"`)
	require.Contains(t, lines[0], `"title":"Lỗi xác thực"`)
	require.Contains(t, lines[1], `"level":"info"`)
	require.Contains(t, lines[1], `"message":"Đã hủy lịch hẹn"`)
}

func TestRecorderAndMulti(t *testing.T) {
	a, b := notify.NewRecorder(), notify.NewRecorder()
	m := notify.Multi{a, nil, b}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Notify(expired)
		}()
	}
	wg.Wait()

	require.Equal(t, 20, a.Len())
	require.Equal(t, 20, b.Len())
	require.Equal(t, expired, a.Toasts()[0])

	a.Reset()
	require.Zero(t, a.Len())
	require.Empty(t, a.Toasts())
}

type fakeHub struct {
	mu       sync.Mutex
	captured []error
	flushed  bool
}

func (h *fakeHub) WithScope(f func(scope *sentry.Scope)) {
	f(sentry.NewScope())
}

func (h *fakeHub) CaptureException(err error) *sentry.EventID {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.captured = append(h.captured, err)
	id := sentry.EventID("1")
	return &id
}

func (h *fakeHub) Flush(time.Duration) bool {
	h.flushed = true
	return true
}

func TestSentry(t *testing.T) {
	apiErr := &client.Error{
		Kind:       client.KindServer,
		StatusCode: http.StatusInternalServerError,
		Message:    "Lỗi máy chủ nội bộ",
		Code:       "DB_DOWN",
		Method:     http.MethodGet,
		Path:       "/appointments",
	}

	t.Run("captures through the hub", func(t *testing.T) {
		hub := &fakeHub{}
		s := notify.NewSentry(hub)

		s.Report(context.Background(), apiErr)
		require.True(t, s.Flush(time.Second))

		require.Len(t, hub.captured, 1)
		require.True(t, errors.Is(hub.captured[0], apiErr))
		require.True(t, hub.flushed)
	})

	t.Run("tags the event", func(t *testing.T) {
		var events []*sentry.Event
		sc, err := sentry.NewClient(sentry.ClientOptions{
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				events = append(events, event)
				return nil
			},
		})
		require.NoError(t, err)

		s := notify.NewSentry(sentry.NewHub(sc, sentry.NewScope()))
		s.Report(context.Background(), apiErr)

		require.Len(t, events, 1)
		require.Equal(t, "server", events[0].Tags["kind"])
		require.Equal(t, "500", events[0].Tags["status"])
		require.Equal(t, "/appointments", events[0].Tags["path"])
		require.Equal(t, "DB_DOWN", events[0].Tags["code"])
	})

	t.Run("empty dsn", func(t *testing.T) {
		s, err := notify.InitSentry("", "TEST", "dev")
		require.NoError(t, err)
		s.Report(context.Background(), apiErr)
	})
}
