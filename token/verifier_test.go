package token_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/token"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://id.itm.vn"

func TestStaticVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	sign := func(k *rsa.PrivateKey, claims jwtlib.MapClaims) string {
		raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodRS256, claims).SignedString(k)
		require.NoError(t, err)
		return raw
	}
	valid := jwtlib.MapClaims{"iss": testIssuer, "sub": "1", "exp": time.Now().Add(time.Hour).Unix()}

	v := token.NewStaticVerifier(testIssuer, key.Public())
	ctx := context.Background()

	t.Run("accepts signed token", func(t *testing.T) {
		require.NoError(t, v.Verify(ctx, sign(key, valid)))
	})

	t.Run("rejects foreign key", func(t *testing.T) {
		require.ErrorIs(t, v.Verify(ctx, sign(other, valid)), errors.ErrInvalidToken)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		claims := jwtlib.MapClaims{"iss": "https://evil", "sub": "1", "exp": time.Now().Add(time.Hour).Unix()}
		require.Error(t, v.Verify(ctx, sign(key, claims)))
	})

	t.Run("rejects expired", func(t *testing.T) {
		claims := jwtlib.MapClaims{"iss": testIssuer, "sub": "1", "exp": time.Now().Add(-time.Hour).Unix()}
		require.ErrorIs(t, v.Verify(ctx, sign(key, claims)), errors.ErrTokenExpired)
	})

	t.Run("issuer check disabled", func(t *testing.T) {
		anyIssuer := token.NewStaticVerifier("", key.Public())
		claims := jwtlib.MapClaims{"iss": "https://elsewhere", "sub": "1", "exp": time.Now().Add(time.Hour).Unix()}
		require.NoError(t, anyIssuer.Verify(ctx, sign(key, claims)))
	})
}
