package query

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/internal/config"
)

// Options tune caching and retries. Zero values fall back to DefaultOptions;
// a negative MaxRetries turns retries off.
type Options struct {
	StaleTime       time.Duration
	GCTime          time.Duration
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultOptions() Options {
	return Options{
		StaleTime:       5 * time.Minute,
		GCTime:          10 * time.Minute,
		MaxRetries:      3,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
	}
}

func OptionsFromConfig(cfg config.QueryConfig) Options {
	return Options{
		StaleTime:       cfg.GetStaleTime(),
		GCTime:          cfg.GetGCTime(),
		MaxRetries:      cfg.GetMaxRetries(),
		InitialInterval: cfg.GetInitialRetryInterval(),
		MaxInterval:     cfg.GetMaxRetryInterval(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.StaleTime == 0 {
		o.StaleTime = d.StaleTime
	}
	if o.GCTime == 0 {
		o.GCTime = d.GCTime
	}
	switch {
	case o.MaxRetries == 0:
		o.MaxRetries = d.MaxRetries
	case o.MaxRetries < 0:
		o.MaxRetries = 0
	}
	if o.InitialInterval == 0 {
		o.InitialInterval = d.InitialInterval
	}
	if o.MaxInterval == 0 {
		o.MaxInterval = d.MaxInterval
	}
	return o
}

// backOff doubles from InitialInterval up to MaxInterval without jitter.
func (o Options) backOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.InitialInterval
	b.MaxInterval = o.MaxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(o.MaxRetries)), ctx)
}

// retry runs fn until it succeeds, fails with an error that is not worth
// retrying, or runs out of attempts. Only network and server failures are
// retried.
func retry[T any](ctx context.Context, o Options, fn func(context.Context) (T, error), onRetry func(error, time.Duration)) (T, error) {
	var out T
	err := backoff.RetryNotify(func() error {
		v, err := fn(ctx)
		if err != nil {
			if !client.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}, o.backOff(ctx), onRetry)
	return out, err
}
