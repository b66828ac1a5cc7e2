package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/itm-clinic/clinic-client/internal/errors"
)

func (c *Client) requestIDMiddleware(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.NewString())
		}
		return next(ctx, req)
	}
}

// authHeaderMiddleware attaches the held access token and records which token
// the request went out with. With no token held the header is removed.
func (c *Client) authHeaderMiddleware(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		tok := c.store.GetTokens().Token()
		if tok.AccessToken != "" {
			req.Header.Set("Authorization", tok.Type()+" "+tok.AccessToken)
		} else {
			req.Header.Del("Authorization")
		}
		req.sentToken = tok.AccessToken
		return next(ctx, req)
	}
}

// sessionMiddleware captures tokens from successful login, register and
// refresh responses and clears the session after a successful logout.
func (c *Client) sessionMiddleware(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		resp, err := next(ctx, req)
		if err != nil {
			return resp, err
		}

		switch p := normalisePath(req.Path); p {
		case LoginPath, RegisterPath, RefreshPath:
			if err := c.captureSession(ctx, p, resp); err != nil {
				return resp, err
			}
		case LogoutPath:
			c.store.ClearTokens(ctx)
		}
		return resp, nil
	}
}

func (c *Client) captureSession(ctx context.Context, path string, resp *Response) error {
	var env Envelope[AuthData]
	if err := resp.Decode(&env); err != nil || !env.Success || env.Data.AccessToken == "" {
		c.logger.Warn().Str("path", path).Msg("auth response carried no tokens")
		if path == RefreshPath {
			return &Error{
				Kind:       KindAuth,
				StatusCode: resp.StatusCode,
				Message:    MsgSessionExpired,
				Method:     http.MethodPost,
				Path:       path,
				Err:        errors.ErrInvalidToken,
			}
		}
		return nil
	}

	if c.verifier != nil {
		if err := c.verifier.Verify(ctx, env.Data.AccessToken); err != nil {
			return &Error{
				Kind:       KindAuth,
				StatusCode: resp.StatusCode,
				Message:    MsgInvalidToken,
				Method:     http.MethodPost,
				Path:       path,
				Err:        fmt.Errorf("%w: %w", errors.ErrInvalidToken, err),
			}
		}
	}

	if path == RefreshPath {
		return c.store.RenewTokens(ctx, env.Data.Session())
	}
	return c.store.SetTokens(ctx, env.Data.Session())
}

// notifyMiddleware raises at most one toast per failed call. Validation
// failures, silent endpoints and 401s owned by the refresh flow stay quiet.
func (c *Client) notifyMiddleware(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		resp, err := next(ctx, req)
		if err == nil {
			return resp, nil
		}
		apiErr, ok := AsError(err)
		if !ok {
			return resp, err
		}

		if apiErr.Kind == KindServer || apiErr.Kind == KindUnknown {
			c.reporter.Report(ctx, apiErr)
		}
		if req.Silent || c.isSilent(req.Path) ||
			apiErr.Kind == KindValidation ||
			(apiErr.StatusCode == http.StatusUnauthorized && !isCredentialEndpoint(req.Path)) ||
			errors.Is(apiErr, errors.ErrSessionExpired) {
			return resp, err
		}

		c.notifier.Notify(Toast{
			Title:       Title(apiErr.Kind),
			Description: apiErr.Message,
			Variant:     VariantDestructive,
		})
		return resp, err
	}
}

func (c *Client) loggingMiddleware(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		status := StatusOf(err)
		if resp != nil {
			status = resp.StatusCode
		}
		ev := c.logger.Debug()
		if err != nil {
			ev = c.logger.Warn().Err(err)
		}
		ev.Str("method", req.Method).
			Str("path", req.Path).
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Int("status", status).
			Bool("retried", req.retried).
			Dur("duration", time.Since(start)).
			Msg("api call")
		return resp, err
	}
}
