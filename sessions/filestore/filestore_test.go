package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/sessions"
	"github.com/itm-clinic/clinic-client/sessions/filestore"
	"github.com/itm-clinic/clinic-client/users"
	"github.com/stretchr/testify/require"
)

func testSession() sessions.Session {
	return sessions.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Profile:      &users.User{ID: 5, Email: "hoa@itm.vn", Role: users.RoleCustomer},
		ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, passphrase := range []string{"", "correct horse"} {
		name := "plain"
		if passphrase != "" {
			name = "encrypted"
		}
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "session.json")
			repo := filestore.New(path, passphrase)

			_, err := repo.Load(ctx)
			require.ErrorIs(t, err, errors.ErrNoSession)

			require.NoError(t, repo.Save(ctx, testSession()))

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, testSession().AccessToken, got.AccessToken)
			require.Equal(t, testSession().Profile.Email, got.Profile.Email)
			require.True(t, testSession().ExpiresAt.Equal(got.ExpiresAt))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			if passphrase != "" {
				require.NotContains(t, string(raw), "refresh-token")
			}

			require.NoError(t, repo.Clear(ctx))
			require.NoError(t, repo.Clear(ctx))
			_, err = repo.Load(ctx)
			require.ErrorIs(t, err, errors.ErrNoSession)
		})
	}
}

func TestRepo_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, filestore.New(path, "right").Save(ctx, testSession()))

	_, err := filestore.New(path, "wrong").Load(ctx)
	require.Error(t, err)

	_, err = filestore.New(path, "").Load(ctx)
	require.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestRepo_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := filestore.New(path, "").Load(context.Background())
	require.Error(t, err)
}
