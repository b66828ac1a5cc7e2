package sessions

import "context"

// Repo persists the session between runs. Implementations return
// errors.ErrNoSession from Load when nothing is stored.
type Repo interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

type nopRepo struct{}

func (nopRepo) Load(context.Context) (Session, error) { return Session{}, errNoSession }
func (nopRepo) Save(context.Context, Session) error   { return nil }
func (nopRepo) Clear(context.Context) error           { return nil }
