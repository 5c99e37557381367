// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/chart/internal/logging"
)

// Factory creates a surface for the given options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	// Name identifies the backend, e.g. "raster" or "recording".
	Name string

	// Priority orders backends for OpenBest; higher wins.
	Priority int

	// Factory creates surfaces.
	Factory Factory

	// Available reports whether the backend can be used on this system.
	Available func() bool
}

var defaultRegistry = NewRegistry()

// Registry maps backend names to factories. It is safe for concurrent use.
//
// Backends register themselves from init:
//
//	func init() {
//	    surface.Register("raster", 10, newRaster, nil)
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

// NewRegistry creates an empty registry. Most code uses the package-level
// functions, which share a default registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]*Backend)}
}

// Register adds a backend to the default registry. A nil available means the
// backend is always available. Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the default registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// List returns the names in the default registry, highest priority first.
func List() []string { return defaultRegistry.List() }

// Available returns the available names in the default registry, highest
// priority first.
func Available() []string { return defaultRegistry.Available() }

// Open creates a surface with the named backend of the default registry.
func Open(name string, opts Options) (Surface, error) {
	return defaultRegistry.Open(name, opts)
}

// OpenBest creates a surface with the best available backend of the default
// registry.
func OpenBest(opts Options) (Surface, error) {
	return defaultRegistry.OpenBest(opts)
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Get returns a copy of the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	if !ok {
		return Backend{}, false
	}
	return *b, true
}

// List returns all names, highest priority first.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(false)
}

// Available returns the names of available backends, highest priority first.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(true)
}

// Open creates a surface with the named backend.
func (r *Registry) Open(name string, opts Options) (Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &InvalidSizeError{Width: opts.Width, Height: opts.Height}
	}

	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	s, err := b.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.Background.A > 0 {
		s.Clear(opts.Background)
	}
	return s, nil
}

// OpenBest tries the available backends in priority order and returns the
// first surface created successfully.
func (r *Registry) OpenBest(opts Options) (Surface, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range names {
		s, err := r.Open(name, opts)
		if err == nil {
			return s, nil
		}
		logging.Logger().Warn("surface: backend failed", "backend", name, "error", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// names must be called with r.mu held.
func (r *Registry) names(onlyAvailable bool) []string {
	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if onlyAvailable && !b.Available() {
			continue
		}
		list = append(list, b)
	}
	slices.SortFunc(list, func(a, b *Backend) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.Name
	}
	return out
}

// ErrNoBackendAvailable is returned when no registered backend is available.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend is registered but cannot be
// used on this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// InvalidSizeError reports a non-positive surface size.
type InvalidSizeError struct {
	Width, Height int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("surface: invalid size %dx%d", e.Width, e.Height)
}
