package logger

import (
	"sort"
	"sync"
)

// Component logger names used by the dispatcher.
const (
	ComponentRegistry = "registry"
	ComponentMediator = "mediator"
)

// named holds component loggers registered by name.
var named = struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}{loggers: make(map[string]*Logger)}

// Register stores a named logger.
func Register(name string, l *Logger) {
	named.mu.Lock()
	defer named.mu.Unlock()
	named.loggers[name] = l
}

// Unregister removes a named logger. Subsequent Get calls fall back to the
// global logger.
func Unregister(name string) {
	named.mu.Lock()
	defer named.mu.Unlock()
	delete(named.loggers, name)
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name.
func Get(name string) *Logger {
	named.mu.RLock()
	l, ok := named.loggers[name]
	named.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// Names returns the registered logger names in sorted order.
func Names() []string {
	named.mu.RLock()
	defer named.mu.RUnlock()
	names := make([]string, 0, len(named.loggers))
	for name := range named.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterDefaults registers component loggers derived from the global logger.
// Call this after Init().
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
