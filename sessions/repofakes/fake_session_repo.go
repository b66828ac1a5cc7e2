package repofakes

import (
	"context"
	"sync"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/sessions"
)

var _ sessions.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo keeps the persisted session in memory and counts writes.
type FakeSessionRepo struct {
	stored  *sessions.Session
	saves   int
	clears  int
	saveErr error
	lock    sync.RWMutex
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

// Seed stores s as if a previous run had saved it.
func (sr *FakeSessionRepo) Seed(s sessions.Session) *FakeSessionRepo {
	sr.lock.Lock()
	defer sr.lock.Unlock()
	sr.stored = &s
	return sr
}

// FailSaves makes every Save return err.
func (sr *FakeSessionRepo) FailSaves(err error) {
	sr.lock.Lock()
	defer sr.lock.Unlock()
	sr.saveErr = err
}

func (sr *FakeSessionRepo) Load(_ context.Context) (sessions.Session, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	if sr.stored == nil {
		return sessions.Session{}, errors.ErrNoSession
	}
	return *sr.stored, nil
}

func (sr *FakeSessionRepo) Save(_ context.Context, s sessions.Session) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if sr.saveErr != nil {
		return sr.saveErr
	}
	sr.saves++
	sr.stored = &s
	return nil
}

func (sr *FakeSessionRepo) Clear(_ context.Context) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	sr.clears++
	sr.stored = nil
	return nil
}

// Stored returns the persisted session, or nil.
func (sr *FakeSessionRepo) Stored() *sessions.Session {
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	if sr.stored == nil {
		return nil
	}
	s := *sr.stored
	return &s
}

func (sr *FakeSessionRepo) Saves() int {
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	return sr.saves
}

func (sr *FakeSessionRepo) Clears() int {
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	return sr.clears
}
