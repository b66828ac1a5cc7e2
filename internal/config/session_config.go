package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionBackend selects where the session survives between runs.
type SessionBackend string

const (
	SessionBackendFile   SessionBackend = "file"
	SessionBackendRedis  SessionBackend = "redis"
	SessionBackendMemory SessionBackend = "memory"
)

const defaultSessionDir = ".itm-clinic"

type Session struct {
	Backend    string        `env:"BACKEND" envDefault:"file"`
	File       string        `env:"FILE"`
	Passphrase string        `env:"PASSPHRASE"`
	RedisAddr  string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisKey   string        `env:"REDIS_KEY" envDefault:"itm-auth-storage"`
	RedisTTL   time.Duration `env:"REDIS_TTL" envDefault:"720h"`
}

var _ SessionConfig = Session{}

func (s Session) validate() error {
	switch s.GetSessionBackend() {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
		return nil
	default:
		return fmt.Errorf("config: unknown session backend %q", s.Backend)
	}
}

func (s Session) GetSessionBackend() SessionBackend {
	return SessionBackend(strings.ToLower(s.Backend))
}

// GetSessionFile defaults to ~/.itm-clinic/session.json.
func (s Session) GetSessionFile() string {
	if s.File != "" {
		return s.File
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultSessionDir, "session.json")
	}
	return filepath.Join(home, defaultSessionDir, "session.json")
}

func (s Session) GetSessionPassphrase() string {
	return s.Passphrase
}

func (s Session) GetRedisAddr() string {
	return s.RedisAddr
}

func (s Session) GetRedisKey() string {
	return s.RedisKey
}

func (s Session) GetRedisTTL() time.Duration {
	return s.RedisTTL
}
