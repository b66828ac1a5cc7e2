package api

import (
	"context"
	"net/http"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/medical"
	"github.com/itm-clinic/clinic-client/users"
)

type Profile struct {
	c *client.Client
}

func (p Profile) Get(ctx context.Context, userID int) (*users.User, error) {
	return client.Call[*users.User](ctx, p.c, client.NewRequest(http.MethodGet, byID(usersPath, userID)))
}

func (p Profile) Update(ctx context.Context, userID int, data medical.UpdateProfile) (*users.User, error) {
	return client.Call[*users.User](ctx, p.c, client.NewRequest(http.MethodPut, byID(usersPath, userID)).WithBody(data))
}

func (p Profile) ChangePassword(ctx context.Context, userID int, data medical.ChangePassword) error {
	_, err := p.c.Put(ctx, action(usersPath, userID, "password"), data)
	return err
}

func (p Profile) UploadAvatar(ctx context.Context, userID int, f File) (medical.Avatar, error) {
	req, err := multipartRequest(action(usersPath, userID, "avatar"), "avatar", f, nil)
	if err != nil {
		return medical.Avatar{}, err
	}
	return client.Call[medical.Avatar](ctx, p.c, req)
}

// DeleteAccount removes the account and signs out locally.
func (p Profile) DeleteAccount(ctx context.Context, userID int) error {
	if _, err := p.c.Delete(ctx, byID(usersPath, userID)); err != nil {
		return err
	}
	p.c.Session().ClearTokens(ctx)
	return nil
}
