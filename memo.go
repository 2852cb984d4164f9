package bem

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Environment tells the memoization adapter whether composers should be
// cached. It is decided by the application at bootstrap and passed in
// explicitly.
type Environment int

const (
	// Static renders once per request; composers are built on every call.
	Static Environment = iota
	// Interactive re-renders long-lived component instances; composers are
	// cached so their identity is stable while the block is unchanged.
	Interactive
)

// String returns "static" or "interactive".
func (e Environment) String() string {
	if e == Interactive {
		return "interactive"
	}
	return "static"
}

// ParseEnvironment parses "static" or "interactive" (case-insensitive).
// An empty string means Static.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "static", "server":
		return Static, nil
	case "interactive", "client":
		return Interactive, nil
	default:
		return Static, fmt.Errorf("unknown environment %q", s)
	}
}

// StableCache returns the cached Composer for key, calling produce only
// when there is none. Implementations must not cache errors.
type StableCache interface {
	GetOrCompute(key string, produce func() (*Composer, error)) (*Composer, error)
}

// Adapt wraps build with cache when env is Interactive. In any other case,
// or with a nil cache, build is returned as is; output is identical either
// way, only the reuse of Composer values differs.
//
// Cache keys carry the separators of build next to the block name, so hooks
// with different schemes can share one cache. The separators are learned
// from the first Composer the adapted hook builds.
func Adapt(build Hook, env Environment, cache StableCache) Hook {
	if env != Interactive || cache == nil {
		return build
	}

	var (
		mu    sync.Mutex
		scope string
		known bool
	)
	return func(block string) (*Composer, error) {
		mu.Lock()
		prefix, ok := scope, known
		mu.Unlock()

		if ok {
			return cache.GetOrCompute(prefix+block, func() (*Composer, error) {
				return build(block)
			})
		}

		c, err := build(block)
		if err != nil {
			return nil, err
		}
		prefix = scopeKey(c.Config())

		mu.Lock()
		scope, known = prefix, true
		mu.Unlock()

		return cache.GetOrCompute(prefix+block, func() (*Composer, error) {
			return c, nil
		})
	}
}

// scopeKey prefixes cache keys with a separator scheme. NUL cannot appear
// in a valid block name.
func scopeKey(cfg Config) string {
	return cfg.ElementSeparator + "\x00" + cfg.ModifierSeparator + "\x00"
}

// Memo is a single-slot StableCache for one call site. It keeps the last
// Composer and replaces it when the key changes.
type Memo struct {
	mu    sync.Mutex
	key   string
	value *Composer
}

// GetOrCompute implements StableCache.
func (m *Memo) GetOrCompute(key string, produce func() (*Composer, error)) (*Composer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.value != nil && m.key == key {
		return m.value, nil
	}

	c, err := produce()
	if err != nil {
		return nil, err
	}
	m.key = key
	m.value = c
	return c, nil
}

// Registry is a keyed StableCache shared by every call site of one render
// scope, typically one per application. Through Adapt it can serve hooks
// with different separators side by side.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*Composer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Composer)}
}

// GetOrCompute implements StableCache.
func (r *Registry) GetOrCompute(key string, produce func() (*Composer, error)) (*Composer, error) {
	r.mu.RLock()
	c, ok := r.items[key]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have filled the slot while we waited.
	if c, ok := r.items[key]; ok {
		return c, nil
	}

	c, err := produce()
	if err != nil {
		return nil, err
	}
	r.items[key] = c
	return c, nil
}

// Len returns the number of cached composers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

type (
	environmentKey struct{}
	cacheKey       struct{}
)

// WithEnvironment stores env in ctx.
func WithEnvironment(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, environmentKey{}, env)
}

// EnvironmentFromContext returns the Environment stored in ctx, or Static.
func EnvironmentFromContext(ctx context.Context) Environment {
	if ctx == nil {
		return Static
	}
	env, _ := ctx.Value(environmentKey{}).(Environment)
	return env
}

// WithCache stores cache in ctx.
func WithCache(ctx context.Context, cache StableCache) context.Context {
	return context.WithValue(ctx, cacheKey{}, cache)
}

// CacheFromContext returns the StableCache stored in ctx, or nil.
func CacheFromContext(ctx context.Context) StableCache {
	if ctx == nil {
		return nil
	}
	cache, _ := ctx.Value(cacheKey{}).(StableCache)
	return cache
}
