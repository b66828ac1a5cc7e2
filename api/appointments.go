package api

import (
	"context"
	"net/http"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/medical"
)

type Appointments struct {
	c *client.Client
}

func (a Appointments) List(ctx context.Context, userID int, f medical.AppointmentFilter) (medical.Paginated[medical.Appointment], error) {
	req := client.NewRequest(http.MethodGet, byUser(appointmentsPath, userID)).WithQuery(f.Values())
	return client.Call[medical.Paginated[medical.Appointment]](ctx, a.c, req)
}

func (a Appointments) Get(ctx context.Context, id int) (medical.Appointment, error) {
	return client.Call[medical.Appointment](ctx, a.c, client.NewRequest(http.MethodGet, byID(appointmentsPath, id)))
}

func (a Appointments) Create(ctx context.Context, data medical.CreateAppointment) (medical.Appointment, error) {
	return client.Call[medical.Appointment](ctx, a.c, client.NewRequest(http.MethodPost, appointmentsPath).WithBody(data))
}

func (a Appointments) Update(ctx context.Context, id int, data medical.UpdateAppointment) (medical.Appointment, error) {
	return client.Call[medical.Appointment](ctx, a.c, client.NewRequest(http.MethodPut, byID(appointmentsPath, id)).WithBody(data))
}

func (a Appointments) Cancel(ctx context.Context, id int, reason string) (medical.Appointment, error) {
	req := client.NewRequest(http.MethodPatch, action(appointmentsPath, id, "cancel")).
		WithBody(medical.CancelAppointment{Reason: reason})
	return client.Call[medical.Appointment](ctx, a.c, req)
}

func (a Appointments) Reschedule(ctx context.Context, id int, data medical.RescheduleAppointment) (medical.Appointment, error) {
	req := client.NewRequest(http.MethodPatch, action(appointmentsPath, id, "reschedule")).WithBody(data)
	return client.Call[medical.Appointment](ctx, a.c, req)
}
