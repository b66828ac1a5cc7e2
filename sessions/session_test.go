package sessions_test

import (
	"testing"
	"time"

	"github.com/itm-clinic/clinic-client/sessions"
	"github.com/itm-clinic/clinic-client/users"
	"github.com/stretchr/testify/require"
)

func TestSession_Expiry(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiresAt  time.Time
		expired    bool
		nearExpiry bool
	}{
		{name: "unknown expiry", expired: true, nearExpiry: false},
		{name: "already past", expiresAt: now.Add(-time.Minute), expired: true, nearExpiry: true},
		{name: "inside five minute window", expiresAt: now.Add(4 * time.Minute), expired: true, nearExpiry: true},
		{name: "exactly five minutes", expiresAt: now.Add(5 * time.Minute), expired: true, nearExpiry: true},
		{name: "near but valid", expiresAt: now.Add(8 * time.Minute), expired: false, nearExpiry: true},
		{name: "comfortably valid", expiresAt: now.Add(time.Hour), expired: false, nearExpiry: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessions.Session{AccessToken: "a", ExpiresAt: tt.expiresAt}
			require.Equal(t, tt.expired, s.IsExpired(now))
			require.Equal(t, tt.nearExpiry, s.IsNearExpiry(now, sessions.NearExpiryThreshold))
		})
	}
}

func TestSession_Status(t *testing.T) {
	now := time.Now()
	s := sessions.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Profile:      &users.User{ID: 3},
		ExpiresAt:    now.Add(time.Hour),
	}

	st := s.Status(now)
	require.True(t, st.IsAuthenticated)
	require.True(t, st.CanRefresh)
	require.False(t, st.IsExpired)

	s.Profile = nil
	require.False(t, s.Authenticated(now))

	require.True(t, sessions.Session{}.Empty())
	require.False(t, sessions.Session{}.Status(now).CanRefresh)
}

func TestSession_Token(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	tok := sessions.Session{AccessToken: "abc", RefreshToken: "r", ExpiresAt: exp}.Token()

	require.Equal(t, "Bearer", tok.Type())
	require.Equal(t, "r", tok.RefreshToken)
	require.True(t, tok.Valid())
}
