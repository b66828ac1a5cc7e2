package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/itm-clinic/clinic-client/internal/utils"
)

// NowTimeFunc is the clock used for the Active flag.
var NowTimeFunc = time.Now

// TokenIntrospection is what the client can learn from an access token
// without holding the issuer's keys.
type TokenIntrospection struct {
	Active    bool      // False once exp has passed
	Subject   string    // User ID
	Email     string    // Optional email claim
	Roles     []string  // Role names or numeric role claims rendered as strings
	IssuedAt  time.Time // Zero if absent
	ExpiresAt time.Time // Zero if absent
}

// Introspect decodes the payload of rawToken. The signature is not checked;
// callers that need that use a token.Verifier.
func Introspect(rawToken string) (*TokenIntrospection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &TokenIntrospection{Active: false}, errors.New("empty token")
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return &TokenIntrospection{Active: false}, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return &TokenIntrospection{Active: false}, errors.New("error extracting claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		if id, ok := claims["nameid"].(string); ok {
			sub = id
		}
	}
	email, _ := claims["email"].(string)

	ti := &TokenIntrospection{
		Subject: sub,
		Email:   email,
		Roles:   rolesClaim(claims),
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		ti.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ti.ExpiresAt = exp.Time
	}
	ti.Active = ti.ExpiresAt.IsZero() || NowTimeFunc().Before(ti.ExpiresAt)
	return ti, nil
}

// ExpiryFromJWT returns the exp claim of rawToken, if it carries one.
func ExpiryFromJWT(rawToken string) (time.Time, bool) {
	ti, err := Introspect(rawToken)
	if err != nil || ti.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return ti.ExpiresAt, true
}

func rolesClaim(claims jwtlib.MapClaims) []string {
	switch v := claims["roles"].(type) {
	case []any:
		return utils.ToStringSlice(v)
	case string:
		return []string{v}
	}
	switch v := claims["role"].(type) {
	case string:
		return []string{v}
	case float64:
		return []string{fmt.Sprintf("%d", int(v))}
	}
	return nil
}
