package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"golang.org/x/sync/singleflight"
)

// RefreshState is Idle or Refreshing.
type RefreshState int32

const (
	StateIdle RefreshState = iota
	StateRefreshing
)

func (s RefreshState) String() string {
	if s == StateRefreshing {
		return "refreshing"
	}
	return "idle"
}

const refreshFlightKey = "refresh"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshFailure is the outcome of the last failed refresh and the access
// token it tried to replace.
type refreshFailure struct {
	token string
	err   error
}

// refresher makes sure at most one refresh call is in flight. Callers that
// hit a 401 while one is running wait for it and share its outcome. Callers
// whose 401 arrives after a failed refresh of their token get the same error.
type refresher struct {
	c     *Client
	group singleflight.Group
	state atomic.Int32

	mu     sync.Mutex
	failed refreshFailure
}

func newRefresher(c *Client) *refresher {
	return &refresher{c: c}
}

func (r *refresher) State() RefreshState {
	return RefreshState(r.state.Load())
}

func (r *refresher) refresh(ctx context.Context) error {
	ch := r.group.DoChan(refreshFlightKey, func() (any, error) {
		r.state.Store(int32(StateRefreshing))
		defer r.state.Store(int32(StateIdle))

		replaced := r.c.store.AccessToken()
		err := r.run(context.WithoutCancel(ctx))

		r.mu.Lock()
		r.failed = refreshFailure{}
		if err != nil && replaced != "" {
			r.failed = refreshFailure{token: replaced, err: err}
		}
		r.mu.Unlock()
		return nil, err
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return newNetworkError(&Request{Method: http.MethodPost, Path: RefreshPath}, ctx.Err())
	}
}

// failedFor returns the error of the last refresh if it failed while
// replacing token, nil otherwise.
func (r *refresher) failedFor(token string) error {
	if token == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failed.token != token {
		return nil
	}
	return r.failed.err
}

func (r *refresher) run(ctx context.Context) error {
	c := r.c

	refreshToken := c.store.RefreshToken()
	if refreshToken == "" {
		return r.expire(ctx, errors.ErrNoRefreshToken)
	}

	req := NewRequest(http.MethodPost, RefreshPath).
		WithBody(refreshRequest{RefreshToken: refreshToken}).
		WithSilent()
	if _, err := c.base(ctx, req); err != nil {
		return r.expire(ctx, err)
	}

	c.logger.Debug().Msg("session refreshed")
	return nil
}

// expire clears the session, tells the user once and sends them to the
// login page unless they are already on an auth page.
func (r *refresher) expire(ctx context.Context, cause error) error {
	c := r.c

	c.store.ClearTokens(ctx)
	c.notifier.Notify(Toast{
		Title:       Title(KindAuth),
		Description: MsgSessionExpired,
		Variant:     VariantDestructive,
	})
	if target, ok := c.loginRedirect(); ok {
		c.navigator.Redirect(target)
	}
	c.logger.Warn().Err(cause).Msg("refresh failed, session cleared")

	return &Error{
		Kind:       KindAuth,
		StatusCode: http.StatusUnauthorized,
		Message:    MsgSessionExpired,
		Method:     http.MethodPost,
		Path:       RefreshPath,
		Err:        fmt.Errorf("%w: %w", errors.ErrSessionExpired, cause),
	}
}

func (c *Client) loginRedirect() (string, bool) {
	current := c.navigator.CurrentPath()
	here := normalisePath(current)
	if here == normalisePath(c.loginPage) {
		return "", false
	}
	for _, p := range c.authPages {
		if here == p {
			return "", false
		}
	}
	if current == "" {
		return c.loginPage, true
	}
	return c.loginPage + "?redirect=" + url.QueryEscape(current), true
}

// refreshMiddleware replays a request once after a 401, refreshing the
// tokens first unless another call already did.
func (c *Client) refreshMiddleware(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		resp, err := next(ctx, req)
		if err == nil || StatusOf(err) != http.StatusUnauthorized || req.retried || isCredentialEndpoint(req.Path) {
			return resp, err
		}

		retry := req.clone()
		retry.retried = true

		if c.store.AccessToken() == "" {
			if failed := c.refresher.failedFor(req.sentToken); failed != nil {
				return nil, failed
			}
		}
		if current := c.store.AccessToken(); current == "" || current == req.sentToken {
			if err := c.refresher.refresh(ctx); err != nil {
				return nil, err
			}
		}
		return next(ctx, retry)
	}
}
