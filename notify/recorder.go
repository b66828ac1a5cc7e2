package notify

import (
	"sync"

	"github.com/itm-clinic/clinic-client/client"
)

// Recorder keeps every toast it receives.
type Recorder struct {
	mu     sync.Mutex
	toasts []client.Toast
}

var _ client.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(t client.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *Recorder) Toasts() []client.Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]client.Toast(nil), r.toasts...)
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.toasts)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = nil
}
