package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/itm-clinic/clinic-client/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := config.NewFromMap(map[string]string{})
	require.NoError(t, err)

	require.Equal(t, "DEV", c.GetEnv())
	require.True(t, c.IsDev())
	require.Equal(t, "https://localhost:7178/api", c.GetBaseURL())
	require.Equal(t, 10*time.Second, c.GetTimeout())
	require.Equal(t, "/login", c.GetLoginPath())
	require.Equal(t, config.SessionBackendFile, c.GetSessionBackend())
	require.Equal(t, "itm-auth-storage", c.GetRedisKey())
	require.Equal(t, 3, c.GetMaxRetries())
	require.Equal(t, time.Second, c.GetInitialRetryInterval())
	require.Equal(t, 30*time.Second, c.GetMaxRetryInterval())
	require.Equal(t, 5*time.Minute, c.GetStaleTime())
	require.Equal(t, 10*time.Minute, c.GetGCTime())
	require.Equal(t, filepath.Join(".itm-clinic", "session.json"), lastTwo(c.GetSessionFile()))
	require.Empty(t, c.GetJWKSURL())
}

func TestNew_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		vars  map[string]string
		check func(t *testing.T, c config.Config)
	}{
		{
			name: "production env",
			vars: map[string]string{"ENV": "prod"},
			check: func(t *testing.T, c config.Config) {
				require.Equal(t, "PROD", c.GetEnv())
				require.False(t, c.IsDev())
			},
		},
		{
			name: "api settings",
			vars: map[string]string{
				"CLINIC_API_URL":     "https://api.itm.vn/api/",
				"CLINIC_API_TIMEOUT": "3s",
			},
			check: func(t *testing.T, c config.Config) {
				require.Equal(t, "https://api.itm.vn/api", c.GetBaseURL())
				require.Equal(t, 3*time.Second, c.GetTimeout())
			},
		},
		{
			name: "redis session backend",
			vars: map[string]string{
				"SESSION_BACKEND":    "REDIS",
				"SESSION_REDIS_ADDR": "cache:6380",
				"SESSION_REDIS_TTL":  "1h",
			},
			check: func(t *testing.T, c config.Config) {
				require.Equal(t, config.SessionBackendRedis, c.GetSessionBackend())
				require.Equal(t, "cache:6380", c.GetRedisAddr())
				require.Equal(t, time.Hour, c.GetRedisTTL())
			},
		},
		{
			name: "explicit session file",
			vars: map[string]string{"SESSION_FILE": "/tmp/s.json", "SESSION_PASSPHRASE": "pw"},
			check: func(t *testing.T, c config.Config) {
				require.Equal(t, "/tmp/s.json", c.GetSessionFile())
				require.Equal(t, "pw", c.GetSessionPassphrase())
			},
		},
		{
			name: "token verification",
			vars: map[string]string{"TOKEN_JWKS_URL": "https://id.itm.vn/jwks", "TOKEN_ISSUER": "https://id.itm.vn"},
			check: func(t *testing.T, c config.Config) {
				require.Equal(t, "https://id.itm.vn/jwks", c.GetJWKSURL())
				require.Equal(t, "https://id.itm.vn", c.GetTokenIssuer())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := config.NewFromMap(tt.vars)
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewFromMap(map[string]string{"SESSION_BACKEND": "sqlite"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown session backend")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := config.NewFromMap(map[string]string{"CLINIC_API_TIMEOUT": "soon"})
		require.Error(t, err)
	})
}

func TestNew_ProcessEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "Clinic Test")
	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, "Clinic Test", c.GetAppName())
}

func lastTwo(p string) string {
	return filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p))
}
