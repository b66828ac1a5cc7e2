package api

import (
	"context"
	"net/http"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/medical"
)

type Cycles struct {
	c *client.Client
}

func (t Cycles) List(ctx context.Context, userID int, f medical.TreatmentCycleFilter) (medical.Paginated[medical.TreatmentCycle], error) {
	req := client.NewRequest(http.MethodGet, byUser(treatmentCyclesPath, userID)).WithQuery(f.Values())
	return client.Call[medical.Paginated[medical.TreatmentCycle]](ctx, t.c, req)
}

func (t Cycles) Get(ctx context.Context, id int) (medical.TreatmentCycle, error) {
	return client.Call[medical.TreatmentCycle](ctx, t.c, client.NewRequest(http.MethodGet, byID(treatmentCyclesPath, id)))
}

func (t Cycles) Create(ctx context.Context, data medical.CreateCycle) (medical.TreatmentCycle, error) {
	return client.Call[medical.TreatmentCycle](ctx, t.c, client.NewRequest(http.MethodPost, treatmentCyclesPath).WithBody(data))
}

func (t Cycles) Update(ctx context.Context, id int, data medical.UpdateCycle) (medical.TreatmentCycle, error) {
	return client.Call[medical.TreatmentCycle](ctx, t.c, client.NewRequest(http.MethodPut, byID(treatmentCyclesPath, id)).WithBody(data))
}

func (t Cycles) Delete(ctx context.Context, id int) error {
	_, err := t.c.Delete(ctx, byID(treatmentCyclesPath, id))
	return err
}

func (t Cycles) AssignDoctor(ctx context.Context, id int, data medical.AssignDoctor) (medical.TreatmentCycle, error) {
	req := client.NewRequest(http.MethodPatch, action(treatmentCyclesPath, id, "assign-doctor")).WithBody(data)
	return client.Call[medical.TreatmentCycle](ctx, t.c, req)
}

type Services struct {
	c *client.Client
}

func (s Services) List(ctx context.Context) ([]medical.TreatmentService, error) {
	return client.Call[[]medical.TreatmentService](ctx, s.c, client.NewRequest(http.MethodGet, treatmentServicesPath))
}

func (s Services) Get(ctx context.Context, id int) (medical.TreatmentService, error) {
	return client.Call[medical.TreatmentService](ctx, s.c, client.NewRequest(http.MethodGet, byID(treatmentServicesPath, id)))
}

func (s Services) Create(ctx context.Context, data medical.TreatmentServiceInput) (medical.TreatmentService, error) {
	return client.Call[medical.TreatmentService](ctx, s.c, client.NewRequest(http.MethodPost, treatmentServicesPath).WithBody(data))
}

func (s Services) Update(ctx context.Context, id int, data medical.TreatmentServiceInput) (medical.TreatmentService, error) {
	return client.Call[medical.TreatmentService](ctx, s.c, client.NewRequest(http.MethodPut, byID(treatmentServicesPath, id)).WithBody(data))
}

func (s Services) Delete(ctx context.Context, id int) error {
	_, err := s.c.Delete(ctx, byID(treatmentServicesPath, id))
	return err
}

type Packages struct {
	c *client.Client
}

func (p Packages) List(ctx context.Context) ([]medical.TreatmentPackage, error) {
	return client.Call[[]medical.TreatmentPackage](ctx, p.c, client.NewRequest(http.MethodGet, treatmentPackagesPath))
}

func (p Packages) Get(ctx context.Context, id int) (medical.TreatmentPackage, error) {
	return client.Call[medical.TreatmentPackage](ctx, p.c, client.NewRequest(http.MethodGet, byID(treatmentPackagesPath, id)))
}

func (p Packages) Create(ctx context.Context, data medical.TreatmentPackageInput) (medical.TreatmentPackage, error) {
	return client.Call[medical.TreatmentPackage](ctx, p.c, client.NewRequest(http.MethodPost, treatmentPackagesPath).WithBody(data))
}

func (p Packages) Update(ctx context.Context, id int, data medical.TreatmentPackageInput) (medical.TreatmentPackage, error) {
	return client.Call[medical.TreatmentPackage](ctx, p.c, client.NewRequest(http.MethodPut, byID(treatmentPackagesPath, id)).WithBody(data))
}

func (p Packages) Delete(ctx context.Context, id int) error {
	_, err := p.c.Delete(ctx, byID(treatmentPackagesPath, id))
	return err
}
