package bootstrap

import (
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
)

// Option configures the App during creation.
type Option func(*appOptions)

type appOptions struct {
	logger          *logger.Logger
	meterProvider   metric.MeterProvider
	behaviors       []mediator.PipelineBehavior
	gracefulTimeout *time.Duration
}

func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithMeterProvider creates the dispatch instruments on mp instead of an OTLP
// provider built from the config. The App does not shut mp down.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *appOptions) {
		o.meterProvider = mp
	}
}

// WithBehaviors installs additional global behaviors after the built-in ones.
func WithBehaviors(b ...mediator.PipelineBehavior) Option {
	return func(o *appOptions) {
		o.behaviors = append(o.behaviors, b...)
	}
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}
