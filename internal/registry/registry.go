// Package registry is the service locator shared by modules. Services are
// stored in a samber/do injector under type-safe named keys.
package registry

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/flashcode/flashweb/internal/config"
)

// Key is a type-safe service name, e.g. "landing.views".
type Key[T any] string

// Registry lets modules share and discover services at runtime.
type Registry struct {
	injector *do.RootScope
	cfg      config.Provider
}

// New creates a registry carrying the application configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{
		injector: do.New(),
		cfg:      cfg,
	}
}

// Config returns the configuration provider.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Injector exposes the underlying container.
func (r *Registry) Injector() do.Injector {
	return r.injector
}

// Set registers value under key, replacing any previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	do.OverrideNamedValue(r.injector, string(key), value)
}

// Get retrieves the service registered under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, err := do.InvokeNamed[T](r.injector, string(key))
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// MustGet retrieves a service or panics. Meant for wiring at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}

// Shutdown shuts down every registered service implementing one of the
// samber/do shutdowner interfaces.
func (r *Registry) Shutdown() {
	r.injector.Shutdown()
}
