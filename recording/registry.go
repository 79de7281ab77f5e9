package recording

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func() Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name.
// It is typically called from init() in backend packages, following the
// database/sql driver pattern.
//
// Register panics if factory is nil or if a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
//
// Example:
//
//	import _ "github.com/gogpu/molsketch/recording/backends/svg"
//
//	backend, err := recording.NewBackend("svg")
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends returns the registered backend names, sorted alphabetically.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
