package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/itm-clinic/clinic-client/notify"
)

// traceTransport prints one line per HTTP exchange.
type traceTransport struct {
	next   http.RoundTripper
	out    io.Writer
	colour bool
	mu     sync.Mutex
}

func (t *traceTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(r)

	status := "ERR"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.mu.Lock()
	fmt.Fprintf(t.out, "[%s] %s %s %s\n", notify.MethodLabel(r.Method, t.colour), r.URL.Path, status,
		time.Since(start).Round(time.Millisecond))
	t.mu.Unlock()
	return resp, err
}
