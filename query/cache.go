// Package query caches API reads the way the web front-end's data layer
// does: entries go stale after StaleTime, are dropped after GCTime without
// use, and concurrent fetches of one key share a single call.
package query

import (
	"context"
	"sync"
	"time"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// NowTimeFunc is overridden by tests.
var NowTimeFunc = time.Now

type entry struct {
	key       Key
	data      any
	updatedAt time.Time
	usedAt    time.Time
	invalid   bool
}

type Cache struct {
	opts   Options
	logger zerolog.Logger

	mu      sync.Mutex
	entries map[string]*entry
	flights singleflight.Group
}

func New(opts Options, logger zerolog.Logger) *Cache {
	return &Cache{
		opts:    opts.withDefaults(),
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Fetch returns the cached value for key while it is fresh, and otherwise
// calls fn with retries. A caller that gives up does not cancel the fetch
// other callers are waiting on.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.fresh(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	id := key.String()
	ch := c.flights.DoChan(id, func() (any, error) {
		v, err := retry(context.WithoutCancel(ctx), c.opts, fn, func(err error, wait time.Duration) {
			c.logger.Debug().Err(err).Str("key", id).Dur("wait", wait).Msg("retrying query")
		})
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		t, ok := res.Val.(T)
		if !ok {
			return zero, errors.Wrapf(errors.ErrInternal, "query %s holds %T", id, res.Val)
		}
		return t, nil
	}
}

// Mutate runs fn once and invalidates the listed keys after it succeeds.
func Mutate[T any](ctx context.Context, c *Cache, fn func(context.Context) (T, error), invalidate ...Key) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	for _, k := range invalidate {
		c.Invalidate(k)
	}
	return v, nil
}

func SetData[T any](c *Cache, key Key, v T) {
	c.store(key, v)
}

// GetData returns the cached value for key, stale or not.
func GetData[T any](c *Cache, key Key) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key.String()]
	if !ok {
		return zero, false
	}
	t, ok := e.data.(T)
	if !ok {
		return zero, false
	}
	e.usedAt = NowTimeFunc()
	return t, true
}

// Invalidate marks every entry under prefix stale so the next Fetch refetches.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			e.invalid = true
			n++
		}
	}
	return n
}

// Remove drops every entry under prefix.
func (c *Cache) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for id, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, id)
			n++
		}
	}
	return n
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// ClearUserData removes everything cached for one patient. Called on logout.
func (c *Cache) ClearUserData(userID int) {
	for _, root := range userScoped {
		c.Remove(Key{root, userID})
	}
}

// RefreshUserData marks a patient's profile and records stale.
func (c *Cache) RefreshUserData(userID int) {
	for _, root := range userRecords {
		c.Invalidate(Key{root, userID})
	}
}

// Collect drops entries unused for longer than GCTime.
func (c *Cache) Collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collectLocked(NowTimeFunc())
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) fresh(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := NowTimeFunc()
	c.collectLocked(now)
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	e.usedAt = now
	if e.invalid || now.Sub(e.updatedAt) >= c.opts.StaleTime {
		return nil, false
	}
	return e.data, true
}

func (c *Cache) store(key Key, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := NowTimeFunc()
	c.entries[key.String()] = &entry{key: append(Key(nil), key...), data: v, updatedAt: now, usedAt: now}
}

func (c *Cache) collectLocked(now time.Time) int {
	n := 0
	for id, e := range c.entries {
		if now.Sub(e.usedAt) >= c.opts.GCTime {
			delete(c.entries, id)
			n++
		}
	}
	if n > 0 {
		c.logger.Debug().Int("entries", n).Msg("collected idle queries")
	}
	return n
}
