package plugin

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// Registry maps plugin names to their handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// DefaultRegistry knows the container and register-components plugins.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(ContainerHandler{})
	_ = r.Register(ComponentsHandler{})
	return r
}

// Register adds a handler. Registering a name twice is an error.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return fmt.Errorf("cannot register nil handler")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[h.Name()]; exists {
		return fmt.Errorf("plugin handler %s already registered", h.Name())
	}
	r.handlers[h.Name()] = h
	return nil
}

// Get returns the handler for name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names lists the registered handler names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.handlers))
}

// Load applies every registration in order. The first invalid registration
// aborts loading.
func (r *Registry) Load(plugins []config.PluginConfig, baseDir string) (*Set, error) {
	set := NewSet()
	env := Env{BaseDir: baseDir}
	for i, p := range plugins {
		h, ok := r.Get(p.Name)
		if !ok {
			slog.Info("Plugin has no validator, passing through", logfields.Plugin(p.Name))
			set.passthrough = append(set.passthrough, p.Name)
			continue
		}
		if err := h.Apply(p.Options, env, set); err != nil {
			if ce, ok := ferrors.AsClassified(err); ok {
				return nil, ce.WithContext("plugin", p.Name).WithContext("index", i)
			}
			return nil, ferrors.ConfigError("invalid plugin options").
				WithContext("plugin", p.Name).
				WithContext("index", i).
				WithCause(err).
				Build()
		}
		slog.Debug("Plugin loaded", logfields.Plugin(p.Name))
	}
	return set, nil
}

// Load applies plugins with the default registry.
func Load(plugins []config.PluginConfig, baseDir string) (*Set, error) {
	return DefaultRegistry().Load(plugins, baseDir)
}
