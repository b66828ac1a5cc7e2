package config

import (
	"strings"
	"time"
)

type API struct {
	URL              string        `env:"URL" envDefault:"https://localhost:7178/api"`
	Timeout          time.Duration `env:"TIMEOUT" envDefault:"10s"`
	MaxResponseBytes int64         `env:"MAX_RESPONSE_BYTES" envDefault:"10485760"`
	LoginPath        string        `env:"LOGIN_PATH" envDefault:"/login"`
}

var _ APIConfig = API{}

func (a API) GetBaseURL() string {
	return strings.TrimRight(a.URL, "/")
}

func (a API) GetTimeout() time.Duration {
	return a.Timeout
}

func (a API) GetMaxResponseBytes() int64 {
	return a.MaxResponseBytes
}

func (a API) GetLoginPath() string {
	return a.LoginPath
}
