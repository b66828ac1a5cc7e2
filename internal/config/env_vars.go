package config

import "strings"

const devEnv = "DEV"

type EnvVars struct {
	Env       string `env:"ENV" envDefault:"DEV"`
	AppName   string `env:"APP_NAME" envDefault:"ITM Clinic"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN string `env:"SENTRY_DSN"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetEnv() string {
	if e.Env == "" {
		return devEnv
	}
	return strings.ToUpper(e.Env)
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetLogLevel() string {
	return e.LogLevel
}

func (e EnvVars) GetSentryDSN() string {
	return e.SentryDSN
}

func (e EnvVars) IsDev() bool {
	return e.GetEnv() == devEnv
}
