package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
)

// entry is a registered behavior tagged with its global registration sequence.
type entry struct {
	seq     uint64
	invoker any
}

// Registry is a concurrency-safe mediator.Resolver.
type Registry struct {
	mu        sync.RWMutex
	handlers  map[mediator.Key]any
	behaviors map[mediator.Key][]entry
	pipeline  []entry
	seq       uint64
	log       *logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events. It is used as
// given; the default is the named "registry" logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		handlers:  make(map[mediator.Key]any),
		behaviors: make(map[mediator.Key][]entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Get(logger.ComponentRegistry)
	}
	return r
}

var _ mediator.Resolver = (*Registry)(nil)

// ResolveHandler returns the invoker registered for key.
func (r *Registry) ResolveHandler(key mediator.Key) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[key]
	return h, ok
}

// ResolveBehaviors returns the behaviors that apply to key, type-specific and
// pipeline-wide, in registration order. The returned slice is owned by the
// caller.
func (r *Registry) ResolveBehaviors(key mediator.Key) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typed := r.behaviors[key]
	out := make([]any, 0, len(typed)+len(r.pipeline))
	i, j := 0, 0
	for i < len(typed) && j < len(r.pipeline) {
		if typed[i].seq < r.pipeline[j].seq {
			out = append(out, typed[i].invoker)
			i++
		} else {
			out = append(out, r.pipeline[j].invoker)
			j++
		}
	}
	for ; i < len(typed); i++ {
		out = append(out, typed[i].invoker)
	}
	for ; j < len(r.pipeline); j++ {
		out = append(out, r.pipeline[j].invoker)
	}
	return out
}

// Keys returns the keys that have a handler, sorted by their string form.
func (r *Registry) Keys() []mediator.Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]mediator.Key, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// HasHandler reports whether a handler is registered for key.
func (r *Registry) HasHandler(key mediator.Key) bool {
	_, ok := r.ResolveHandler(key)
	return ok
}

func (r *Registry) addHandler(key mediator.Key, invoker any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[key]; exists {
		return errors.AlreadyExists("handler for " + key.String())
	}
	r.handlers[key] = invoker

	r.log.Debug("Handler registered", map[string]interface{}{
		logger.FieldRequest:  mediator.TypeName(key.Request),
		logger.FieldResponse: mediator.TypeName(key.Response),
	})
	return nil
}

func (r *Registry) addBehavior(key mediator.Key, invoker any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.behaviors[key] = append(r.behaviors[key], entry{seq: r.seq, invoker: invoker})

	r.log.Debug("Behavior registered", map[string]interface{}{
		logger.FieldRequest: key.String(),
		"position":          len(r.behaviors[key]),
	})
}

func (r *Registry) addPipeline(invoker any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.pipeline = append(r.pipeline, entry{seq: r.seq, invoker: invoker})

	r.log.Debug("Pipeline behavior registered", map[string]interface{}{
		"behavior": fmt.Sprintf("%T", invoker),
		"position": len(r.pipeline),
	})
}

// checkRequestType rejects interface request types: a runtime request value
// always has a concrete type, so such a registration could never match.
func checkRequestType(t reflect.Type) error {
	if t.Kind() == reflect.Interface {
		return errors.InvalidRegistration(fmt.Sprintf("request type %s is an interface; register a concrete type", mediator.TypeName(t)))
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func nilArgument(kind string, key mediator.Key) error {
	return errors.InvalidRegistration(fmt.Sprintf("%s for %s is nil", kind, key))
}
