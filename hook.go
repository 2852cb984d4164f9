package bem

import "context"

// Hook turns a block name into a Composer. Hooks returned by CreateHook
// build a fresh Composer on every call; use Memoize or InContext to reuse
// them across renders.
type Hook func(block string) (*Composer, error)

// CreateHook resolves the separator options once and returns a Hook that
// builds composers with them.
//
//	useBem := bem.CreateHook(bem.WithElementSeparator("-"), bem.WithModifierSeparator("_"))
//	c, _ := useBem("b")
//	c.Class("e", bem.Single("m")) // "b-e b-e_m"
func CreateHook(opts ...Option) Hook {
	cfg := ResolveConfig(opts...)
	return func(block string) (*Composer, error) {
		return newComposer(block, cfg)
	}
}

var defaultHook = CreateHook()

// Use builds a Composer for block with the default "__" / "--" separators.
func Use(block string) (*Composer, error) {
	return defaultHook(block)
}

// Memoize is shorthand for Adapt(h, env, cache).
func (h Hook) Memoize(env Environment, cache StableCache) Hook {
	return Adapt(h, env, cache)
}

// InContext adapts h with the Environment and StableCache stored in ctx.
// Without them h is returned unchanged.
func (h Hook) InContext(ctx context.Context) Hook {
	return Adapt(h, EnvironmentFromContext(ctx), CacheFromContext(ctx))
}
