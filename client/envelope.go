package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/internal/utils"
	"github.com/itm-clinic/clinic-client/sessions"
	"github.com/itm-clinic/clinic-client/users"
)

// Envelope is the wrapper every clinic API response uses.
type Envelope[T any] struct {
	Success bool                `json:"success"`
	Data    T                   `json:"data"`
	Message string              `json:"message,omitempty"`
	Code    string              `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// AuthData is the payload of login, register and refresh responses.
type AuthData struct {
	// AccessToken is the bearer token for protected endpoints.
	// Usage: "Authorization: Bearer <accessToken>"
	AccessToken string `json:"accessToken"`

	// RefreshToken is exchanged at /auth/refresh for a new pair.
	// Rotates on each refresh.
	RefreshToken string `json:"refreshToken"`

	// User is the profile of the signed-in account.
	// Only present on login and register.
	User *users.User `json:"user,omitempty"`

	// ExpiresAt is the access token expiry as an ISO-8601 timestamp.
	// Optional: the JWT exp claim is used when missing.
	ExpiresAt string `json:"expiresAt,omitempty"`
}

var expiresAtLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"}

// Session converts the payload into the shape the session store holds.
func (a AuthData) Session() sessions.Session {
	s := sessions.Session{
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
		Profile:      a.User,
	}
	for _, layout := range expiresAtLayouts {
		if t, err := time.Parse(layout, a.ExpiresAt); err == nil {
			s.ExpiresAt = t
			break
		}
	}
	return s
}

// Decode unwraps the data of a success envelope. An empty body decodes to
// the zero value.
func Decode[T any](resp *Response) (T, error) {
	var zero T
	method, path := "", ""
	if resp.Request != nil {
		method, path = resp.Request.Method, resp.Request.Path
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return zero, nil
	}

	var env Envelope[T]
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return zero, &Error{
			Kind:       KindUnknown,
			StatusCode: resp.StatusCode,
			Message:    MsgDefault,
			Method:     method,
			Path:       path,
			Err:        fmt.Errorf("%w: %w", errors.ErrEnvelope, err),
		}
	}
	if !env.Success {
		return zero, &Error{
			Kind:       KindUnknown,
			StatusCode: resp.StatusCode,
			Message:    utils.FirstNonEmpty(env.Message, MsgDefault),
			Code:       env.Code,
			Fields:     env.Errors,
			Method:     method,
			Path:       path,
			Err:        errors.ErrEnvelope,
		}
	}
	return env.Data, nil
}

// Call sends req and unwraps the response envelope.
func Call[T any](ctx context.Context, c *Client, req *Request) (T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](resp)
}
