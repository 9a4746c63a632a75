package source

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds registered source adapters.
type Registry struct {
	adapters map[string]Adapter
}

// DefaultRegistry is the global adapter registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter to the registry.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Name()] = a
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (Adapter, error) {
	a, ok := r.adapters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", name)
	}
	return a, nil
}

// List returns all registered adapter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect returns the adapter whose CanParse accepts the content.
func (r *Registry) Detect(peek []byte) (Adapter, error) {
	for _, a := range r.adapters {
		if a.CanParse(peek) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("could not detect source format from content")
}

// Register adds an adapter to the default registry.
func Register(a Adapter) {
	DefaultRegistry.Register(a)
}

// Get retrieves an adapter from the default registry.
func Get(name string) (Adapter, error) {
	return DefaultRegistry.Get(name)
}

// List returns the default registry's adapter names.
func List() []string {
	return DefaultRegistry.List()
}

// Detect finds an adapter in the default registry by content sniffing.
func Detect(peek []byte) (Adapter, error) {
	return DefaultRegistry.Detect(peek)
}
