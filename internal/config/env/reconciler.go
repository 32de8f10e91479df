package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type reconcilerEnv struct {
	URL     string        `env:"RECONCILER_WEBHOOK_URL,required"`
	Token   string        `env:"RECONCILER_WEBHOOK_TOKEN,required"`
	Timeout time.Duration `env:"RECONCILER_TIMEOUT" envDefault:"15s"`
}

type reconciler struct {
	raw reconcilerEnv
}

func NewReconcilerConfig() (*reconciler, error) {
	var raw reconcilerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &reconciler{raw: raw}, nil
}

func (cfg *reconciler) URL() string            { return cfg.raw.URL }
func (cfg *reconciler) Token() string          { return cfg.raw.Token }
func (cfg *reconciler) Timeout() time.Duration { return cfg.raw.Timeout }
