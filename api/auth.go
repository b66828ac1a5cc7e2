package api

import (
	"context"
	"net/http"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/users"
)

type Auth struct {
	c *client.Client
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email                 string         `json:"email"`
	Password              string         `json:"password"`
	ConfirmPassword       string         `json:"-"`
	FullName              string         `json:"fullName"`
	PhoneNumber           string         `json:"phoneNumber,omitempty"`
	Gender                users.Gender   `json:"gender,omitempty"`
	Role                  users.RoleType `json:"role"`
	Address               string         `json:"address,omitempty"`
	EmergencyContactName  string         `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string         `json:"emergencyContactPhone,omitempty"`
	MaritalStatus         string         `json:"maritalStatus,omitempty"`
	Occupation            string         `json:"occupation,omitempty"`
}

// Login checks the form locally, then signs in. The client stores the
// returned tokens.
func (a Auth) Login(ctx context.Context, req LoginRequest) (client.AuthData, error) {
	if errs := users.ValidateLogin(req.Email, req.Password); !errs.Empty() {
		return client.AuthData{}, client.NewValidationError(errs)
	}
	return client.Call[client.AuthData](ctx, a.c, client.NewRequest(http.MethodPost, client.LoginPath).WithBody(req))
}

// Register creates a patient account unless another role is set.
func (a Auth) Register(ctx context.Context, req RegisterRequest) (client.AuthData, error) {
	if errs := users.ValidateRegistration(req.Email, req.Password, req.ConfirmPassword); !errs.Empty() {
		return client.AuthData{}, client.NewValidationError(errs)
	}
	if req.Role == 0 {
		req.Role = users.RoleCustomer
	}
	return client.Call[client.AuthData](ctx, a.c, client.NewRequest(http.MethodPost, client.RegisterPath).WithBody(req))
}

func (a Auth) Logout(ctx context.Context) error {
	_, err := a.c.Post(ctx, client.LogoutPath, nil)
	return err
}

// Me fetches the signed-in profile. Failures are never toasted.
func (a Auth) Me(ctx context.Context) (*users.User, error) {
	return client.Call[*users.User](ctx, a.c, client.NewRequest(http.MethodGet, client.CurrentUserPath))
}

// Refresh rotates the token pair now instead of waiting for a 401.
func (a Auth) Refresh(ctx context.Context) error {
	return a.c.Refresh(ctx)
}
