package notify

import "github.com/itm-clinic/clinic-client/client"

// Multi fans a toast out to several notifiers.
type Multi []client.Notifier

func (m Multi) Notify(t client.Toast) {
	for _, n := range m {
		if n != nil {
			n.Notify(t)
		}
	}
}
