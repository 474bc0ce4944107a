package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SalesURL        string        `envconfig:"SALES_API_URL" required:"true"`
	CostsURL        string        `envconfig:"COSTS_API_URL" required:"true"`
	Port            string        `envconfig:"PORT" default:"8080"`
	FetchTimeout    time.Duration `envconfig:"FETCH_TIMEOUT" default:"8s"`
	FetchRetries    int           `envconfig:"FETCH_RETRIES" default:"2"`
	FetchRetryDelay time.Duration `envconfig:"FETCH_RETRY_DELAY" default:"300ms"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

func (c Config) SlogLevel() slog.Level {
	if c.LogLevel == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
