// Package redisstore keeps the session in Redis so several processes on one
// workstation share a sign-in.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/sessions"
	"github.com/redis/go-redis/v9"
)

var _ sessions.Repo = (*Repo)(nil)

type Repo struct {
	rdb redis.UniversalClient
	key string
	ttl time.Duration
}

// New stores the session under key. A zero ttl keeps it until cleared.
func New(rdb redis.UniversalClient, key string, ttl time.Duration) *Repo {
	return &Repo{rdb: rdb, key: key, ttl: ttl}
}

func (r *Repo) Load(ctx context.Context) (sessions.Session, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return sessions.Session{}, errors.ErrNoSession
	}
	if err != nil {
		return sessions.Session{}, fmt.Errorf("redisstore.Load: %w", err)
	}

	var s sessions.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return sessions.Session{}, fmt.Errorf("redisstore.Load: decode: %w", err)
	}
	return s, nil
}

func (r *Repo) Save(ctx context.Context, s sessions.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("redisstore.Save: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redisstore.Save: %w", err)
	}
	return nil
}

func (r *Repo) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redisstore.Clear: %w", err)
	}
	return nil
}
