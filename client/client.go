package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/itm-clinic/clinic-client/sessions"
	"github.com/itm-clinic/clinic-client/token"
	"github.com/rs/zerolog"
)

const (
	DefaultTimeout          = 10 * time.Second
	DefaultMaxResponseBytes = 10 << 20
	DefaultLoginPage        = "/login"

	RequestIDHeader = "X-Request-ID"
)

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the authenticated clinic API client. Every call goes through one
// pipeline: request id, failure toasts, token refresh, session capture,
// bearer header, tracing, transport.
type Client struct {
	baseURL          string
	timeout          time.Duration
	maxResponseBytes int64
	doer             Doer

	store     *sessions.Store
	notifier  Notifier
	navigator Navigator
	reporter  ErrorReporter
	verifier  token.Verifier
	logger    zerolog.Logger

	loginPage string
	authPages []string
	silent    map[string]struct{}

	refresher *refresher
	handler   Handler
	base      Handler
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxResponseBytes = n
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

func WithReporter(r ErrorReporter) Option {
	return func(c *Client) { c.reporter = r }
}

// WithVerifier makes the client reject tokens whose signature does not verify.
func WithVerifier(v token.Verifier) Option {
	return func(c *Client) { c.verifier = v }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithLoginPage sets the front-end location used after a failed refresh.
func WithLoginPage(p string) Option {
	return func(c *Client) {
		if p != "" {
			c.loginPage = p
		}
	}
}

// WithSilentPaths adds endpoints whose failures never raise a toast.
func WithSilentPaths(paths ...string) Option {
	return func(c *Client) {
		for _, p := range paths {
			c.silent[normalisePath(p)] = struct{}{}
		}
	}
}

// New builds a client for baseURL. A nil store keeps the session in memory.
func New(baseURL string, store *sessions.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		timeout:          DefaultTimeout,
		maxResponseBytes: DefaultMaxResponseBytes,
		doer:             &http.Client{},
		store:            store,
		notifier:         nopNotifier{},
		navigator:        NewStaticNavigator(""),
		reporter:         nopReporter{},
		logger:           zerolog.Nop(),
		loginPage:        DefaultLoginPage,
		authPages:        DefaultAuthPages,
		silent:           make(map[string]struct{}),
	}
	for _, p := range DefaultSilentPaths {
		c.silent[p] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = sessions.NewStore(nil, c.logger)
	}

	c.refresher = newRefresher(c)
	c.base = Chain(c.transport,
		c.requestIDMiddleware,
		c.sessionMiddleware,
		c.authHeaderMiddleware,
		c.loggingMiddleware,
	)
	c.handler = Chain(c.transport,
		c.requestIDMiddleware,
		c.notifyMiddleware,
		c.refreshMiddleware,
		c.sessionMiddleware,
		c.authHeaderMiddleware,
		c.loggingMiddleware,
	)
	return c
}

// Do sends req through the full pipeline. req itself is not modified.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.handler(ctx, req.clone())
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, path).WithQuery(query))
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPost, path).WithBody(body))
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPut, path).WithBody(body))
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPatch, path).WithBody(body))
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodDelete, path))
}

// Session is the store the client reads tokens from.
func (c *Client) Session() *sessions.Store {
	return c.store
}

// Refresh exchanges the refresh token now, sharing any refresh already in flight.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refresher.refresh(ctx)
}

func (c *Client) RefreshState() RefreshState {
	return c.refresher.State()
}

func (c *Client) isSilent(path string) bool {
	_, ok := c.silent[normalisePath(path)]
	return ok
}
