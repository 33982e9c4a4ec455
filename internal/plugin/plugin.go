// Package plugin validates the site's plugin registrations and gathers what
// they contribute to page authoring: custom container types and globally
// registered components.
package plugin

import (
	"bytes"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Handler validates and applies one kind of plugin registration.
type Handler interface {
	// Name is the plugin name used in the configuration's plugins list.
	Name() string

	// Apply validates options and records the plugin's contributions in set.
	Apply(options map[string]any, env Env, set *Set) error
}

// Env carries the paths a handler resolves options against.
type Env struct {
	BaseDir string // Directory of the configuration file
}

// Container is a custom block type usable as "::: type".
type Container struct {
	Type    string
	Locales map[string]Locale
	BuiltIn bool
}

// Locale holds per-locale container labels.
type Locale struct {
	DefaultInfo string `yaml:"default_info"`
}

// Component is a globally registered Vue component.
type Component struct {
	Name        string
	Path        string // Absolute path of the .vue file; empty for built-ins
	HasTemplate bool
	BuiltIn     bool
}

// Default theme container types available without any plugin.
var builtinContainers = []string{"tip", "warning", "danger", "details", "code-group", "code-group-item"}

// Components the generator and default theme register globally.
var builtinComponents = []string{"Badge", "ClientOnly", "CodeGroup", "CodeGroupItem", "Content", "RouterLink", "RouterView"}

// Set is the combined contribution of all plugin registrations.
type Set struct {
	containers  map[string]Container
	components  map[string]Component
	passthrough []string
}

// NewSet returns a Set holding only the built-in containers and components.
func NewSet() *Set {
	s := &Set{
		containers: make(map[string]Container),
		components: make(map[string]Component),
	}
	for _, t := range builtinContainers {
		s.containers[t] = Container{Type: t, BuiltIn: true}
	}
	for _, n := range builtinComponents {
		s.components[n] = Component{Name: n, HasTemplate: true, BuiltIn: true}
	}
	return s
}

// AddContainer records a container type. Later registrations replace earlier ones.
func (s *Set) AddContainer(c Container) { s.containers[c.Type] = c }

// AddComponent records a component.
func (s *Set) AddComponent(c Component) { s.components[c.Name] = c }

// ContainerTypes returns every known container type, sorted.
func (s *Set) ContainerTypes() []string {
	return slices.Sorted(maps.Keys(s.containers))
}

// HasContainer reports whether "::: t" is a known block type.
func (s *Set) HasContainer(t string) bool {
	_, ok := s.containers[t]
	return ok
}

// Container returns the registration for a container type.
func (s *Set) Container(t string) (Container, bool) {
	c, ok := s.containers[t]
	return c, ok
}

// HasComponent reports whether a component tag is registered.
func (s *Set) HasComponent(name string) bool {
	_, ok := s.components[name]
	return ok
}

// Components returns all registered components sorted by name.
func (s *Set) Components() []Component {
	out := make([]Component, 0, len(s.components))
	for _, name := range slices.Sorted(maps.Keys(s.components)) {
		out = append(out, s.components[name])
	}
	return out
}

// Passthrough lists plugin names that were accepted without validation.
func (s *Set) Passthrough() []string {
	return slices.Clone(s.passthrough)
}

// decodeOptions converts a loosely typed options map into a typed struct,
// rejecting unknown keys.
func decodeOptions(options map[string]any, out any) error {
	data, err := yaml.Marshal(options)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
