package cache

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	MaxSize       int           `envconfig:"CACHE_MAX_SIZE" default:"100"`
	DefaultTTL    time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"5m"`
	SweepInterval time.Duration `envconfig:"CACHE_SWEEP_INTERVAL" default:"0s"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.MaxSize, validation.Required, validation.Min(1)),
		validation.Field(&c.DefaultTTL, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.SweepInterval, validation.Min(time.Duration(0))),
	)
}

// Options converts the config into constructor options.
func (c Config) Options() []Option {
	return []Option{WithMaxSize(c.MaxSize)}
}
