package config

import "time"

type Query struct {
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"3"`
	InitialInterval time.Duration `env:"INITIAL_INTERVAL" envDefault:"1s"`
	MaxInterval     time.Duration `env:"MAX_INTERVAL" envDefault:"30s"`
	StaleTime       time.Duration `env:"STALE_TIME" envDefault:"5m"`
	GCTime          time.Duration `env:"GC_TIME" envDefault:"10m"`
}

var _ QueryConfig = Query{}

func (q Query) GetMaxRetries() int {
	return q.MaxRetries
}

func (q Query) GetInitialRetryInterval() time.Duration {
	return q.InitialInterval
}

func (q Query) GetMaxRetryInterval() time.Duration {
	return q.MaxInterval
}

func (q Query) GetStaleTime() time.Duration {
	return q.StaleTime
}

func (q Query) GetGCTime() time.Duration {
	return q.GCTime
}
