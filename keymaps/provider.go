package keymaps

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds layout descriptions by name.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]*Description
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		layouts: map[string]*Description{},
	}
}

// CreateDefaultRegistry creates and returns a registry with all built-in layouts
func CreateDefaultRegistry() *Registry {
	r := NewRegistry()

	// Register all available layouts
	RegisterUSLayout(r)
	RegisterGermanLayout(r)

	return r
}

// Register adds d under its name. It panics when the name or id is taken,
// since built-in tables are registered at startup.
func (r *Registry) Register(d *Description) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.layouts[d.Name]; ok {
		panic(fmt.Sprintf("keyboard layout already registered: %s", d.Name))
	}
	for _, other := range r.layouts {
		if other.ID == d.ID {
			panic(fmt.Sprintf("keyboard layout id %s already registered by %s", d.ID, other.Name))
		}
	}
	r.layouts[d.Name] = d
}

// Get returns the description registered with name.
func (r *Registry) Get(name string) (*Description, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.layouts[name]
	return d, ok
}

// ByID returns the description registered with id.
func (r *Registry) ByID(id LayoutID) (*Description, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.layouts {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Names returns the registered layout names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.layouts))
	for n := range r.layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
