package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/mediator/config"
	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
	"github.com/kbukum/mediator/observability"
	"github.com/kbukum/mediator/registry"
)

// App is a dispatcher service assembled from a config.Config: logger, meter,
// registry with the global behaviors installed, and the dispatcher itself.
//
// Example:
//
//	app, err := bootstrap.NewApp(config.DefaultConfig("orders"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.AddHandlerFunc[GetOrder, Order](app.Registry, getOrder)
//	order, err := mediator.Send[Order](ctx, app.Dispatcher, GetOrder{ID: id})
type App struct {
	Name       string
	Version    string
	Cfg        *config.Config
	Logger     *logger.Logger
	Registry   *registry.Registry
	Dispatcher *mediator.Dispatcher
	Metrics    *observability.Metrics
	Summary    *Summary

	// meterProvider is set only when the App created the provider itself.
	meterProvider   *sdkmetric.MeterProvider
	gracefulTimeout time.Duration

	onStart []Hook
	onStop  []Hook
}

// components are the named loggers an App registers for its lifetime.
var components = []string{logger.ComponentRegistry, logger.ComponentMediator}

// NewApp builds an App from cfg. It applies defaults, validates the config,
// initializes the logger and, when enabled, the meter, then installs the
// global behaviors in this order: request id, recover, logging, metrics,
// validation, timeout, bulkhead. Behaviors passed through WithBehaviors
// follow them.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config validation: config is nil")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App{
		Name:            cfg.Name,
		Version:         cfg.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		app.Logger = o.logger
		for _, name := range components {
			logger.Register(name, app.Logger.WithComponent(name))
		}
	} else {
		logger.Init(&cfg.Logging)
		app.Logger = logger.GetGlobalLogger()
		logger.RegisterDefaults(components...)
	}

	provider, err := app.initMeter(o.meterProvider)
	if err != nil {
		return nil, err
	}
	if cfg.Pipeline.Metrics {
		if provider == nil {
			provider = otel.GetMeterProvider()
		}
		app.Metrics, err = observability.NewMetrics(provider.Meter(observability.InstrumentationName))
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}

	app.Registry = registry.New(registry.WithLogger(logger.Get(logger.ComponentRegistry)))
	app.Summary = NewSummary(cfg.Name, cfg.Version, cfg.Environment)

	stages := pipeline(cfg, logger.Get(logger.ComponentMediator), app.Metrics)
	for i, b := range o.behaviors {
		stages = append(stages, stage{name: fmt.Sprintf("custom-%d", i+1), behavior: b})
	}
	for _, s := range stages {
		if err := registry.AddPipelineBehavior(app.Registry, s.behavior); err != nil {
			return nil, fmt.Errorf("behavior %s: %w", s.name, err)
		}
		app.Summary.AddBehavior(s.name)
	}

	app.Dispatcher = mediator.New(app.Registry)
	return app, nil
}

// initMeter returns the provider metric instruments are created on. A
// provider passed by option wins; otherwise an OTLP provider is started when
// metric export is enabled. nil means neither applies.
func (a *App) initMeter(provided metric.MeterProvider) (metric.MeterProvider, error) {
	if provided != nil {
		return provided, nil
	}
	if !a.Cfg.Metrics.Enabled {
		return nil, nil
	}

	mp, err := observability.InitMeter(context.Background(), observability.MeterConfig{
		ServiceName:    a.Cfg.Name,
		ServiceVersion: a.Cfg.Version,
		Environment:    a.Cfg.Environment,
		Endpoint:       a.Cfg.Metrics.Endpoint,
		Insecure:       a.Cfg.Metrics.Insecure,
		Interval:       a.Cfg.Metrics.Interval,
	})
	if err != nil {
		return nil, fmt.Errorf("meter: %w", err)
	}
	a.meterProvider = mp
	return mp, nil
}

// Run runs the OnStart hooks, logs the summary and blocks until a shutdown
// signal arrives or ctx ends. It then shuts the App down.
func (a *App) Run(ctx context.Context) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	a.Logger.Info("Dispatcher ready, waiting for shutdown signal")
	a.WaitForSignal(ctx)

	return a.stop()
}

// RunTask runs the OnStart hooks, then task, then shuts the App down. The
// context passed to task is canceled on SIGINT or SIGTERM. The task error
// takes precedence over a shutdown error.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", map[string]interface{}{
				"signal": sig.String(),
			})
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

func (a *App) startup(ctx context.Context) error {
	start := time.Now()

	a.Logger.Info("Starting dispatcher", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
	})

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	a.Summary.SetStartupDuration(time.Since(start))
	a.DisplaySummary()
	return nil
}

// DisplaySummary logs the installed behaviors and registered handlers.
func (a *App) DisplaySummary() {
	a.Summary.Display(a.Registry, a.Logger)
}

// WaitForSignal blocks until SIGINT, SIGTERM or the end of ctx.
func (a *App) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.Logger.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})
		return sig
	case <-ctx.Done():
		a.Logger.Info("Context canceled, shutting down")
		return nil
	}
}

// Shutdown runs the OnStop hooks, flushes the meter provider the App created
// and unregisters the App's named loggers. A provider passed through
// WithMeterProvider is left to its owner.
func (a *App) Shutdown(ctx context.Context) error {
	a.Logger.Info("Shutting down dispatcher")

	var errs []error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", map[string]interface{}{
			"error": err.Error(),
		})
		errs = append(errs, err)
	}

	if a.meterProvider != nil {
		if err := a.meterProvider.Shutdown(ctx); err != nil {
			a.Logger.Error("Meter shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
		a.meterProvider = nil
	}

	for _, name := range components {
		logger.Unregister(name)
	}

	a.Logger.Info("Dispatcher shutdown complete")
	return stderrors.Join(errs...)
}

func (a *App) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()
	return a.Shutdown(ctx)
}
