package behaviors

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/kbukum/mediator/mediator"
)

// Store holds cached results.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Cache returns results from store for requests whose key was seen before,
// without invoking the rest of the chain. Only successful results are
// stored.
//
// Concurrent misses for the same key share one call down the chain. That
// call runs detached from the callers' cancellation; each caller stops
// waiting when its own ctx ends.
func Cache[Req mediator.Request[R], R any](store Store, key func(Req) string) mediator.Behavior[Req, R] {
	var group singleflight.Group
	prefix := mediator.KeyFor[Req, R]().String() + ":"

	return mediator.BehaviorFunc[Req, R](func(ctx context.Context, req Req, next mediator.Next[R]) (R, error) {
		var zero R
		k := prefix + key(req)
		if r, ok := lookup[R](store, k); ok {
			return r, nil
		}

		shared := context.WithoutCancel(ctx)
		ch := group.DoChan(k, func() (any, error) {
			// A flight started just after another one stored k.
			if r, ok := lookup[R](store, k); ok {
				return r, nil
			}
			r, err := next(shared)
			if err != nil {
				return nil, err
			}
			store.Set(k, r)
			return r, nil
		})

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				return zero, res.Err
			}
			r, _ := res.Val.(R)
			return r, nil
		}
	})
}

func lookup[R any](store Store, k string) (R, bool) {
	if v, ok := store.Get(k); ok {
		if r, ok := v.(R); ok {
			return r, true
		}
	}
	var zero R
	return zero, false
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// MemoryStore is a size-bounded in-process Store with a fixed time to live.
type MemoryStore struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a store holding at most size entries, each for ttl.
// A zero ttl keeps entries until they are evicted.
func NewMemoryStore(size int, ttl time.Duration) (*MemoryStore, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{entries: entries, ttl: ttl, now: time.Now}, nil
}

// Get returns the live entry for key.
func (s *MemoryStore) Get(key string) (any, bool) {
	raw, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}
	e := raw.(cacheEntry)
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		s.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key.
func (s *MemoryStore) Set(key string, value any) {
	e := cacheEntry{value: value}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.entries.Add(key, e)
}

// Delete removes key.
func (s *MemoryStore) Delete(key string) {
	s.entries.Remove(key)
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (s *MemoryStore) Len() int {
	return s.entries.Len()
}
