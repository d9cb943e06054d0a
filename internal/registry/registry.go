// Package registry lets modules share services without importing each other.
//
// The site module registers the content store, the scroll tracker and the
// page builder. The livereload module registers its hub. The keys live in
// keys.go.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aswini27ms/folio/internal/config"
)

// ErrServiceMissing is returned by Require when nothing usable is registered
// under a key.
var ErrServiceMissing = errors.New("service not registered")

// Key names a service and fixes its type.
type Key[T any] string

// Registry holds the services modules publish during Register.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a registry carrying the application's configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg}
}

// Config returns the configuration provider.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set stores value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get returns the service under key. ok is false when the key is unset or
// holds a value of another type.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	val, ok := r.services.Load(string(key))
	if !ok {
		return zero, false
	}
	result, ok := val.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// Require is Get for Boot: a module that cannot run without a service
// returns the error and the server refuses to start.
func Require[T any](r *Registry, key Key[T]) (T, error) {
	val, ok := Get(r, key)
	if !ok {
		return val, fmt.Errorf("%w: %s", ErrServiceMissing, string(key))
	}
	return val, nil
}

// Keys lists the registered keys in sorted order.
func (r *Registry) Keys() []string {
	var keys []string
	r.services.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}
