package store

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type unitOptions struct {
	logger zerolog.Logger
}

// Option configures a unit.
type Option func(*unitOptions)

// WithLogger sets the logger failures are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *unitOptions) { o.logger = l }
}

func applyOptions(component string, opts []Option) unitOptions {
	o := unitOptions{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With().Str("component", component).Logger()
	return o
}
