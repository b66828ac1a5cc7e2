package api

import (
	"context"
	"net/http"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/medical"
)

type Notifications struct {
	c *client.Client
}

func (n Notifications) List(ctx context.Context, userID int, f medical.NotificationFilter) (medical.Paginated[medical.Notification], error) {
	req := client.NewRequest(http.MethodGet, byUser(notificationsPath, userID)).WithQuery(f.Values())
	return client.Call[medical.Paginated[medical.Notification]](ctx, n.c, req)
}

func (n Notifications) MarkRead(ctx context.Context, id int) (medical.Notification, error) {
	return client.Call[medical.Notification](ctx, n.c, client.NewRequest(http.MethodPatch, action(notificationsPath, id, "read")))
}

func (n Notifications) MarkAllRead(ctx context.Context, userID int) error {
	_, err := n.c.Patch(ctx, byUser(notificationsPath, userID)+"/read-all", nil)
	return err
}

func (n Notifications) Create(ctx context.Context, data medical.CreateNotification) (medical.Notification, error) {
	return client.Call[medical.Notification](ctx, n.c, client.NewRequest(http.MethodPost, notificationsPath).WithBody(data))
}

// UnreadCount is polled in the background, so it never raises a toast.
func (n Notifications) UnreadCount(ctx context.Context, userID int) (int, error) {
	req := client.NewRequest(http.MethodGet, byUser(notificationsPath, userID)+"/unread-count").WithSilent()
	c, err := client.Call[medical.UnreadCount](ctx, n.c, req)
	return c.Count, err
}
