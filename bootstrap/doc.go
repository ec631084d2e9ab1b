// Package bootstrap assembles a dispatcher service from a config.Config.
//
// NewApp initializes the logger and meter, creates the registry, installs the
// global behaviors selected by the config and builds the dispatcher. Run and
// RunTask add the lifecycle: OnStart hooks, a startup summary, signal
// handling and a graceful Shutdown.
//
// # Quick Start
//
//	cfg, err := config.Load("orders")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := bootstrap.NewApp(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.AddHandler[GetOrder, Order](app.Registry, &getOrderHandler{})
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    _, err := mediator.Send[Order](ctx, app.Dispatcher, GetOrder{ID: "42"})
//	    return err
//	})
package bootstrap
