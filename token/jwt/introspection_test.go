package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/itm-clinic/clinic-client/token/jwt"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("not-checked"))
	require.NoError(t, err)
	return raw
}

func TestIntrospect(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	jwt.NowTimeFunc = func() time.Time { return now }
	t.Cleanup(func() { jwt.NowTimeFunc = time.Now })

	t.Run("standard claims", func(t *testing.T) {
		raw := signHS256(t, jwtlib.MapClaims{
			"sub":   "42",
			"email": "lan@itm.vn",
			"roles": []any{"customer", 7},
			"iat":   now.Add(-time.Minute).Unix(),
			"exp":   now.Add(time.Hour).Unix(),
		})

		ti, err := jwt.Introspect(raw)
		require.NoError(t, err)
		require.True(t, ti.Active)
		require.Equal(t, "42", ti.Subject)
		require.Equal(t, "lan@itm.vn", ti.Email)
		require.Equal(t, []string{"customer"}, ti.Roles)
		require.Equal(t, now.Add(time.Hour).Unix(), ti.ExpiresAt.Unix())
	})

	t.Run("expired token is inactive", func(t *testing.T) {
		raw := signHS256(t, jwtlib.MapClaims{"sub": "42", "exp": now.Add(-time.Second).Unix()})
		ti, err := jwt.Introspect(raw)
		require.NoError(t, err)
		require.False(t, ti.Active)
	})

	t.Run("numeric role claim", func(t *testing.T) {
		raw := signHS256(t, jwtlib.MapClaims{"nameid": "9", "role": 2})
		ti, err := jwt.Introspect(raw)
		require.NoError(t, err)
		require.Equal(t, "9", ti.Subject)
		require.Equal(t, []string{"2"}, ti.Roles)
		require.True(t, ti.Active)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.Introspect("not-a-jwt")
		require.Error(t, err)
		_, err = jwt.Introspect("  ")
		require.Error(t, err)
	})
}

func TestExpiryFromJWT(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	got, ok := jwt.ExpiryFromJWT(signHS256(t, jwtlib.MapClaims{"exp": exp.Unix()}))
	require.True(t, ok)
	require.True(t, exp.Equal(got))

	_, ok = jwt.ExpiryFromJWT(signHS256(t, jwtlib.MapClaims{"sub": "1"}))
	require.False(t, ok)

	_, ok = jwt.ExpiryFromJWT("opaque-token")
	require.False(t, ok)
}
