package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type feedEnv struct {
	Source       string        `env:"FEED_SOURCE" envDefault:"kafka"`
	MockInterval time.Duration `env:"FEED_MOCK_INTERVAL" envDefault:"30s"`
}

type feed struct {
	raw feedEnv
}

func NewFeedConfig() (*feed, error) {
	var raw feedEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Source {
	case "kafka", "mock":
	default:
		return nil, fmt.Errorf("unknown feed source %q", raw.Source)
	}

	return &feed{raw: raw}, nil
}

func (cfg *feed) Source() string              { return cfg.raw.Source }
func (cfg *feed) MockInterval() time.Duration { return cfg.raw.MockInterval }
