package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config interface {
	EnvConfig
	APIConfig
	SessionConfig
	TokenConfig
	QueryConfig
}

type EnvConfig interface {
	GetEnv() string
	GetAppName() string
	GetLogLevel() string
	GetSentryDSN() string
	IsDev() bool
}

type APIConfig interface {
	GetBaseURL() string
	GetTimeout() time.Duration
	GetMaxResponseBytes() int64
	GetLoginPath() string
}

type SessionConfig interface {
	GetSessionBackend() SessionBackend
	GetSessionFile() string
	GetSessionPassphrase() string
	GetRedisAddr() string
	GetRedisKey() string
	GetRedisTTL() time.Duration
}

type TokenConfig interface {
	GetTokenIssuer() string
	GetJWKSURL() string
}

type QueryConfig interface {
	GetMaxRetries() int
	GetInitialRetryInterval() time.Duration
	GetMaxRetryInterval() time.Duration
	GetStaleTime() time.Duration
	GetGCTime() time.Duration
}

type mainConfig struct {
	EnvVars
	API     `envPrefix:"CLINIC_API_"`
	Session `envPrefix:"SESSION_"`
	Token   `envPrefix:"TOKEN_"`
	Query   `envPrefix:"QUERY_"`
}

// New reads the configuration from the process environment.
func New() (Config, error) {
	return parse(env.Options{})
}

// NewFromMap reads the configuration from the supplied variables only.
func NewFromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var c mainConfig
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, fmt.Errorf("config.parse: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
