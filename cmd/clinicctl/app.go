package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/itm-clinic/clinic-client/api"
	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/internal/config"
	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/internal/logging"
	"github.com/itm-clinic/clinic-client/notify"
	"github.com/itm-clinic/clinic-client/query"
	"github.com/itm-clinic/clinic-client/sessions"
	"github.com/itm-clinic/clinic-client/sessions/filestore"
	"github.com/itm-clinic/clinic-client/sessions/redisstore"
	"github.com/itm-clinic/clinic-client/token"
	"github.com/itm-clinic/clinic-client/users"
	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var errNotSignedIn = errors.Wrapf(errors.ErrNoSession, "chưa đăng nhập, hãy chạy `clinicctl login`")

// app is everything one command invocation needs.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	store  *sessions.Store
	client *client.Client
	api    *api.API
	cache  *query.Cache

	closers []func() error
}

type appOptions struct {
	out    io.Writer
	errOut io.Writer
	page   string
	trace  bool
	colour bool
}

func newApp(ctx context.Context, cfg config.Config, opts appOptions) (*app, error) {
	a := &app{
		cfg:    cfg,
		logger: logging.New(cfg.GetEnv(), cfg.GetLogLevel(), opts.errOut),
	}

	repo, err := a.sessionRepo()
	if err != nil {
		return nil, err
	}
	a.store = sessions.NewStore(repo, a.logger)
	if err := a.store.Rehydrate(ctx); err != nil {
		a.logger.Err(err).Msg("could not restore the saved session")
	}

	var transport http.RoundTripper = http.DefaultTransport
	if opts.trace {
		transport = &traceTransport{next: transport, out: opts.errOut, colour: opts.colour}
	}

	clientOpts := []client.Option{
		client.WithHTTPClient(&http.Client{Transport: transport}),
		client.WithTimeout(cfg.GetTimeout()),
		client.WithMaxResponseBytes(cfg.GetMaxResponseBytes()),
		client.WithNotifier(notify.NewConsole(opts.errOut, opts.colour)),
		client.WithNavigator(newCLINavigator(opts.errOut, opts.page)),
		client.WithLogger(logging.ForClient(cfg.GetEnv(), a.logger)),
		client.WithLoginPage(cfg.GetLoginPath()),
	}
	if url := cfg.GetJWKSURL(); url != "" {
		clientOpts = append(clientOpts, client.WithVerifier(token.NewOIDCVerifier(ctx, cfg.GetTokenIssuer(), url)))
	}
	if dsn := cfg.GetSentryDSN(); dsn != "" {
		reporter, err := notify.InitSentry(dsn, cfg.GetEnv(), cfg.GetAppName())
		if err != nil {
			a.logger.Err(err).Msg("sentry disabled")
		} else {
			clientOpts = append(clientOpts, client.WithReporter(reporter))
			a.closers = append(a.closers, func() error {
				reporter.Flush(2 * time.Second)
				return nil
			})
		}
	}

	a.client = client.New(cfg.GetBaseURL(), a.store, clientOpts...)
	a.api = api.New(a.client)
	a.cache = query.New(query.OptionsFromConfig(cfg), a.logger)
	return a, nil
}

func (a *app) sessionRepo() (sessions.Repo, error) {
	switch a.cfg.GetSessionBackend() {
	case config.SessionBackendFile:
		return filestore.New(a.cfg.GetSessionFile(), a.cfg.GetSessionPassphrase()), nil
	case config.SessionBackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: a.cfg.GetRedisAddr()})
		a.closers = append(a.closers, rdb.Close)
		return redisstore.New(rdb, a.cfg.GetRedisKey(), a.cfg.GetRedisTTL()), nil
	case config.SessionBackendMemory:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", a.cfg.GetSessionBackend())
	}
}

// profile is the signed-in user, or errNotSignedIn.
func (a *app) profile() (*users.User, error) {
	s := a.store.GetTokens()
	if s.AccessToken == "" || s.Profile == nil {
		return nil, errNotSignedIn
	}
	return s.Profile, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Err(err).Msg("shutdown")
		}
	}
}

func colourOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
