package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/medical"
)

type Doctors struct {
	c *client.Client
}

func (d Doctors) List(ctx context.Context, f medical.DoctorFilter) (medical.Paginated[medical.Doctor], error) {
	req := client.NewRequest(http.MethodGet, doctorsPath).WithQuery(f.Values())
	return client.Call[medical.Paginated[medical.Doctor]](ctx, d.c, req)
}

func (d Doctors) Get(ctx context.Context, id int) (medical.Doctor, error) {
	return client.Call[medical.Doctor](ctx, d.c, client.NewRequest(http.MethodGet, byID(doctorsPath, id)))
}

func (d Doctors) Search(ctx context.Context, q medical.DoctorSearch) ([]medical.Doctor, error) {
	return client.Call[[]medical.Doctor](ctx, d.c, client.NewRequest(http.MethodPost, doctorsPath+"/search").WithBody(q))
}

func (d Doctors) Create(ctx context.Context, data medical.DoctorInput) (medical.Doctor, error) {
	return client.Call[medical.Doctor](ctx, d.c, client.NewRequest(http.MethodPost, doctorsPath).WithBody(data))
}

func (d Doctors) Update(ctx context.Context, id int, data medical.DoctorInput) (medical.Doctor, error) {
	return client.Call[medical.Doctor](ctx, d.c, client.NewRequest(http.MethodPut, byID(doctorsPath, id)).WithBody(data))
}

func (d Doctors) Delete(ctx context.Context, id int) error {
	_, err := d.c.Delete(ctx, byID(doctorsPath, id))
	return err
}

type Schedules struct {
	c *client.Client
}

func (s Schedules) List(ctx context.Context, doctorID int) ([]medical.DoctorSchedule, error) {
	path := fmt.Sprintf("%s/doctor/%d", doctorSchedulesPath, doctorID)
	return client.Call[[]medical.DoctorSchedule](ctx, s.c, client.NewRequest(http.MethodGet, path))
}

// Available lists the free slots of a doctor on date (YYYY-MM-DD).
func (s Schedules) Available(ctx context.Context, doctorID int, date string) ([]medical.AvailableSlot, error) {
	path := fmt.Sprintf("%s/doctor/%d/available", doctorSchedulesPath, doctorID)
	req := client.NewRequest(http.MethodGet, path).WithQuery(map[string][]string{"date": {date}})
	return client.Call[[]medical.AvailableSlot](ctx, s.c, req)
}

func (s Schedules) Create(ctx context.Context, data medical.DoctorScheduleInput) (medical.DoctorSchedule, error) {
	return client.Call[medical.DoctorSchedule](ctx, s.c, client.NewRequest(http.MethodPost, doctorSchedulesPath).WithBody(data))
}

func (s Schedules) Update(ctx context.Context, id int, data medical.DoctorScheduleInput) (medical.DoctorSchedule, error) {
	return client.Call[medical.DoctorSchedule](ctx, s.c, client.NewRequest(http.MethodPut, byID(doctorSchedulesPath, id)).WithBody(data))
}

func (s Schedules) Delete(ctx context.Context, id int) error {
	_, err := s.c.Delete(ctx, byID(doctorSchedulesPath, id))
	return err
}
