// Package registry holds the long-lived set of named special templates
// that rolls resolve tokens against.
package registry

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
)

// Registry is a name-keyed set of specials. Registration never merges:
// the first special registered under a name stays until it is removed.
//
// Registry is not safe for concurrent use; callers serialise mutation.
type Registry struct {
	entries map[string]special.Special
}

// New creates an empty registry
func New() *Registry {
	return &Registry{entries: make(map[string]special.Special)}
}

// Register adds s and reports whether it was added.
// It returns false when the name is already taken.
func (r *Registry) Register(s special.Special) bool {
	if _, exists := r.entries[s.Name()]; exists {
		return false
	}
	r.entries[s.Name()] = s
	return true
}

// Unregister removes the special stored under name
func (r *Registry) Unregister(name string) bool {
	if _, exists := r.entries[name]; !exists {
		return false
	}
	delete(r.entries, name)
	return true
}

// UnregisterSpecial removes s only if the registered entry equals it
func (r *Registry) UnregisterSpecial(s special.Special) bool {
	existing, exists := r.entries[s.Name()]
	if !exists || !existing.Equal(s) {
		return false
	}
	delete(r.entries, s.Name())
	return true
}

// Lookup finds a special by exact name, falling back to a
// case-insensitive match.
func (r *Registry) Lookup(name string) (special.Special, bool) {
	if s, ok := r.entries[name]; ok {
		return s, true
	}
	// deterministic when several names fold together
	for _, s := range r.List() {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return special.Special{}, false
}

// List returns every registered special sorted by name
func (r *Registry) List() []special.Special {
	out := make([]special.Special, 0, len(r.entries))
	for _, s := range r.entries {
		out = append(out, s)
	}
	slices.SortFunc(out, special.Compare)
	return out
}

// Len returns the number of registered specials
func (r *Registry) Len() int {
	return len(r.entries)
}
