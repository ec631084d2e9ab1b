// Package config loads the configuration of a mediator service.
//
// Values come from a YAML file, a .env file and the process environment, in
// increasing order of precedence. Environment variables map onto nested keys
// by splitting on underscores, so PIPELINE_TIMEOUT sets pipeline.timeout and
// LOGGING_LEVEL sets logging.level.
//
// # Usage
//
//	cfg, err := config.Load("orders")
//	if err != nil {
//	    return err
//	}
//
// Services with extra settings embed ServiceConfig and call LoadConfig:
//
//	type OrdersConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Warehouse     string `yaml:"warehouse" mapstructure:"warehouse"`
//	}
//	err := config.LoadConfig("orders", &cfg, config.WithDefaults(config.DefaultValues()))
package config
