package sessions

import (
	"time"

	"github.com/itm-clinic/clinic-client/users"
	"golang.org/x/oauth2"
)

const (
	// ExpiryWindow is how early an access token is treated as expired.
	ExpiryWindow = 5 * time.Minute
	// NearExpiryThreshold is the default lead time for IsNearExpiry.
	NearExpiryThreshold = 10 * time.Minute
)

// Session is the authentication state of the signed-in user.
type Session struct {
	AccessToken  string      `json:"accessToken,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      *users.User `json:"profile,omitempty"`
	ExpiresAt    time.Time   `json:"tokenExpiryTime,omitempty"`
}

// AuthStatus summarises a session for display and routing decisions.
type AuthStatus struct {
	HasAccessToken  bool
	HasRefreshToken bool
	HasProfile      bool
	IsExpired       bool
	IsNearExpiry    bool
	IsAuthenticated bool
	CanRefresh      bool
}

func (s Session) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && s.Profile == nil
}

// Token exposes the session as an oauth2 token.
func (s Session) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: s.RefreshToken,
		Expiry:       s.ExpiresAt,
	}
}

// IsExpired is true when the expiry is unknown or less than ExpiryWindow away.
func (s Session) IsExpired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return true
	}
	return !now.Add(ExpiryWindow).Before(s.ExpiresAt)
}

func (s Session) IsNearExpiry(now time.Time, threshold time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(threshold).Before(s.ExpiresAt)
}

func (s Session) Authenticated(now time.Time) bool {
	return s.AccessToken != "" && s.Profile != nil && !s.IsExpired(now)
}

func (s Session) Status(now time.Time) AuthStatus {
	return AuthStatus{
		HasAccessToken:  s.AccessToken != "",
		HasRefreshToken: s.RefreshToken != "",
		HasProfile:      s.Profile != nil,
		IsExpired:       s.IsExpired(now),
		IsNearExpiry:    s.IsNearExpiry(now, NearExpiryThreshold),
		IsAuthenticated: s.Authenticated(now),
		CanRefresh:      s.RefreshToken != "",
	}
}

func (s Session) clone() Session {
	s.Profile = s.Profile.Clone()
	return s
}
