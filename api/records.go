package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/medical"
)

type History struct {
	c *client.Client
}

func (h History) List(ctx context.Context, userID int) ([]medical.MedicalHistory, error) {
	return client.Call[[]medical.MedicalHistory](ctx, h.c, client.NewRequest(http.MethodGet, byUser(medicalHistoryPath, userID)))
}

func (h History) Create(ctx context.Context, data medical.MedicalHistory) (medical.MedicalHistory, error) {
	return client.Call[medical.MedicalHistory](ctx, h.c, client.NewRequest(http.MethodPost, medicalHistoryPath).WithBody(data))
}

func (h History) Update(ctx context.Context, id int, data medical.MedicalHistory) (medical.MedicalHistory, error) {
	return client.Call[medical.MedicalHistory](ctx, h.c, client.NewRequest(http.MethodPut, byID(medicalHistoryPath, id)).WithBody(data))
}

func (h History) Delete(ctx context.Context, id int) error {
	_, err := h.c.Delete(ctx, byID(medicalHistoryPath, id))
	return err
}

type Contacts struct {
	c *client.Client
}

func (e Contacts) List(ctx context.Context, userID int) ([]medical.EmergencyContact, error) {
	return client.Call[[]medical.EmergencyContact](ctx, e.c, client.NewRequest(http.MethodGet, byUser(emergencyContactsPath, userID)))
}

func (e Contacts) Create(ctx context.Context, data medical.EmergencyContact) (medical.EmergencyContact, error) {
	return client.Call[medical.EmergencyContact](ctx, e.c, client.NewRequest(http.MethodPost, emergencyContactsPath).WithBody(data))
}

func (e Contacts) Update(ctx context.Context, id int, data medical.EmergencyContact) (medical.EmergencyContact, error) {
	return client.Call[medical.EmergencyContact](ctx, e.c, client.NewRequest(http.MethodPut, byID(emergencyContactsPath, id)).WithBody(data))
}

func (e Contacts) Delete(ctx context.Context, id int) error {
	_, err := e.c.Delete(ctx, byID(emergencyContactsPath, id))
	return err
}

type Documents struct {
	c *client.Client
}

func (d Documents) List(ctx context.Context, userID int) ([]medical.MedicalDocument, error) {
	return client.Call[[]medical.MedicalDocument](ctx, d.c, client.NewRequest(http.MethodGet, byUser(medicalDocumentsPath, userID)))
}

// Upload sends f as multipart form data with the owner and an optional
// description.
func (d Documents) Upload(ctx context.Context, userID int, f File, description string) (medical.MedicalDocument, error) {
	fields := []formField{{"userId", strconv.Itoa(userID)}}
	if description != "" {
		fields = append(fields, formField{"description", description})
	}
	req, err := multipartRequest(medicalDocumentsPath+"/upload", "file", f, fields)
	if err != nil {
		return medical.MedicalDocument{}, err
	}
	return client.Call[medical.MedicalDocument](ctx, d.c, req)
}

func (d Documents) Delete(ctx context.Context, id int) error {
	_, err := d.c.Delete(ctx, byID(medicalDocumentsPath, id))
	return err
}
