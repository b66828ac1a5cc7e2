package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/token/jwt"
	"github.com/rs/zerolog"
)

var errNoSession = errors.ErrNoSession

// NowTimeFunc is the clock used by Store.Status.
var NowTimeFunc = time.Now

// Store holds the single session of this client. Writers replace the whole
// session under one lock so readers never see a mix of old and new tokens.
// Durable writes happen after the in-memory swap and are ordered by
// generation.
type Store struct {
	mu      sync.RWMutex
	current Session
	gen     uint64

	persistMu sync.Mutex
	persisted uint64

	repo   Repo
	logger zerolog.Logger
}

// NewStore creates an empty store backed by repo. A nil repo keeps the
// session in memory only.
func NewStore(repo Repo, logger zerolog.Logger) *Store {
	if repo == nil {
		repo = nopRepo{}
	}
	return &Store{repo: repo, logger: logger}
}

// Rehydrate loads the persisted session. Stored data without an access token
// or profile is discarded.
func (s *Store) Rehydrate(ctx context.Context) error {
	stored, err := s.repo.Load(ctx)
	if errors.Is(err, errNoSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sessions.Rehydrate: %w", err)
	}

	if stored.AccessToken == "" || stored.Profile == nil {
		s.logger.Warn().Msg("discarding incomplete stored session")
		if err := s.repo.Clear(ctx); err != nil {
			s.logger.Err(err).Msg("clear stored session")
		}
		return nil
	}

	s.mu.Lock()
	s.current = stored.clone()
	s.gen++
	s.mu.Unlock()
	return nil
}

// SetTokens replaces the whole held session, as after a login or register.
// A zero expiry is read from the access token's exp claim.
func (s *Store) SetTokens(ctx context.Context, next Session) error {
	return s.swap(ctx, "sessions.SetTokens", next, false)
}

// RenewTokens replaces the tokens after a refresh. A nil profile or empty
// refresh token keeps the held one.
func (s *Store) RenewTokens(ctx context.Context, next Session) error {
	return s.swap(ctx, "sessions.RenewTokens", next, true)
}

func (s *Store) swap(ctx context.Context, op string, next Session, keepHeld bool) error {
	if next.AccessToken == "" {
		return errors.Wrapf(errors.ErrInvalidToken, "%s: empty access token", op)
	}
	if next.ExpiresAt.IsZero() {
		if exp, ok := jwt.ExpiryFromJWT(next.AccessToken); ok {
			next.ExpiresAt = exp
		}
	}
	next = next.clone()

	s.mu.Lock()
	if keepHeld {
		if next.Profile == nil {
			next.Profile = s.current.Profile
		}
		if next.RefreshToken == "" {
			next.RefreshToken = s.current.RefreshToken
		}
	}
	s.current = next
	s.gen++
	gen, snap := s.gen, s.current.clone()
	s.mu.Unlock()

	s.persist(ctx, gen, &snap)
	return nil
}

// ClearTokens drops the access token, refresh token, profile and expiry together.
func (s *Store) ClearTokens(ctx context.Context) {
	s.mu.Lock()
	s.current = Session{}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.persist(ctx, gen, nil)
}

// GetTokens returns a copy of the held session.
func (s *Store) GetTokens() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.RefreshToken
}

func (s *Store) Status() AuthStatus {
	return s.GetTokens().Status(NowTimeFunc())
}

func (s *Store) persist(ctx context.Context, gen uint64, snap *Session) {
	ctx = context.WithoutCancel(ctx)

	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if gen <= s.persisted {
		return
	}
	s.persisted = gen

	var err error
	if snap == nil {
		err = s.repo.Clear(ctx)
	} else {
		err = s.repo.Save(ctx, *snap)
	}
	if err != nil {
		s.logger.Err(err).Uint64("generation", gen).Msg("persist session")
	}
}
