package client

import "strings"

const (
	LoginPath       = "/auth/login"
	RegisterPath    = "/auth/register"
	RefreshPath     = "/auth/refresh"
	LogoutPath      = "/auth/logout"
	CurrentUserPath = "/auth/me"
)

// DefaultSilentPaths never raise a failure toast.
var DefaultSilentPaths = []string{RefreshPath, CurrentUserPath}

// DefaultAuthPages are front-end locations that must not be redirected to
// the login page again.
var DefaultAuthPages = []string{"/login", "/register", "/forgot-password", "/reset-password"}

func normalisePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// isCredentialEndpoint is true for calls whose 401 means bad credentials
// rather than an expired access token.
func isCredentialEndpoint(p string) bool {
	switch normalisePath(p) {
	case LoginPath, RegisterPath, RefreshPath:
		return true
	}
	return false
}
