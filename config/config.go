package config

import (
	"fmt"
	"time"
)

// Config is the configuration of a dispatcher service.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Pipeline      PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Metrics       MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// PipelineConfig selects the behaviors installed for every request type.
type PipelineConfig struct {
	RequestID  bool `yaml:"request_id" mapstructure:"request_id"`
	Recover    bool `yaml:"recover" mapstructure:"recover"`
	Logging    bool `yaml:"logging" mapstructure:"logging"`
	Validation bool `yaml:"validation" mapstructure:"validation"`
	Metrics    bool `yaml:"metrics" mapstructure:"metrics"`
	// SlowThreshold makes the logging behavior warn about slow requests.
	SlowThreshold time.Duration `yaml:"slow_threshold" mapstructure:"slow_threshold"`
	// Timeout bounds each request. 0 disables the timeout behavior.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// MaxConcurrent caps requests in flight. 0 disables the bulkhead.
	MaxConcurrent int           `yaml:"max_concurrent" mapstructure:"max_concurrent"`
	MaxWait       time.Duration `yaml:"max_wait" mapstructure:"max_wait"`
}

// MetricsConfig configures OTLP metric export.
type MetricsConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfig returns the configuration used when nothing is set:
// request ids, panic recovery, logging and validation on; no timeout, no
// concurrency limit, no metric export.
func DefaultConfig(name string) *Config {
	cfg := &Config{
		ServiceConfig: ServiceConfig{Name: name},
		Pipeline: PipelineConfig{
			RequestID:  true,
			Recover:    true,
			Logging:    true,
			Validation: true,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// DefaultValues returns the viper defaults matching DefaultConfig.
func DefaultValues() map[string]any {
	return map[string]any{
		"environment":             "development",
		"pipeline.request_id":     true,
		"pipeline.recover":        true,
		"pipeline.logging":        true,
		"pipeline.validation":     true,
		"pipeline.slow_threshold": "500ms",
		"metrics.endpoint":        "localhost:4318",
		"metrics.insecure":        true,
		"metrics.interval":        "15s",
	}
}

// ApplyDefaults fills in unset values.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Pipeline.SlowThreshold == 0 {
		c.Pipeline.SlowThreshold = 500 * time.Millisecond
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = "localhost:4318"
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = 15 * time.Second
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	p := c.Pipeline
	if p.Timeout < 0 {
		return fmt.Errorf("config.pipeline.timeout must not be negative (got: %s)", p.Timeout)
	}
	if p.SlowThreshold < 0 {
		return fmt.Errorf("config.pipeline.slow_threshold must not be negative (got: %s)", p.SlowThreshold)
	}
	if p.MaxConcurrent < 0 {
		return fmt.Errorf("config.pipeline.max_concurrent must not be negative (got: %d)", p.MaxConcurrent)
	}
	if p.MaxWait < 0 {
		return fmt.Errorf("config.pipeline.max_wait must not be negative (got: %s)", p.MaxWait)
	}
	if c.Metrics.Enabled && c.Metrics.Endpoint == "" {
		return fmt.Errorf("config.metrics.endpoint is required when metrics are enabled")
	}
	if c.Metrics.Interval < 0 {
		return fmt.Errorf("config.metrics.interval must not be negative (got: %s)", c.Metrics.Interval)
	}
	return nil
}

// Load reads the configuration of serviceName, applies defaults and validates
// it. A name missing from every source defaults to serviceName.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	opts = append([]LoaderOption{WithDefaults(DefaultValues())}, opts...)
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
