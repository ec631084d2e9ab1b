package bootstrap

import (
	"sync"
	"time"

	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/registry"
	"github.com/kbukum/mediator/version"
)

// Summary collects what the App was assembled with for the startup log.
type Summary struct {
	mu              sync.Mutex
	serviceName     string
	version         string
	environment     string
	behaviors       []string
	startupDuration time.Duration
}

// NewSummary creates an empty summary.
func NewSummary(serviceName, version, environment string) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
		environment: environment,
	}
}

// AddBehavior appends a global behavior name. Order is pipeline order.
func (s *Summary) AddBehavior(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.behaviors = append(s.behaviors, name)
}

// Behaviors returns the global behavior names, outermost first.
func (s *Summary) Behaviors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.behaviors))
	copy(out, s.behaviors)
	return out
}

// SetStartupDuration records how long startup took.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startupDuration = d
}

// Display logs the summary together with the handlers registered on reg.
func (s *Summary) Display(reg *registry.Registry, log *logger.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := reg.Keys()
	handlers := make([]string, 0, len(keys))
	for _, k := range keys {
		handlers = append(handlers, k.String())
	}

	build := version.Get()
	log.Info("Dispatcher summary", logger.Fields(
		"service", s.serviceName,
		"version", s.version,
		"build", build.Short(),
		"go_version", build.GoVersion,
		"environment", s.environment,
		"behaviors", s.behaviors,
		"handlers", handlers,
		"loggers", logger.Names(),
		"startup_ms", s.startupDuration.Milliseconds(),
	))
	if len(handlers) == 0 {
		log.Warn("No handlers registered")
	}
}
