package registry

import (
	"sort"
	"sync"
)

// Kind distinguishes the symbolic namespaces.
type Kind string

const (
	// KindView names a client view backed by a single asset.
	KindView Kind = "view"
	// KindFeature names an application feature bundle.
	KindFeature Kind = "feature"
)

// Entry maps a symbolic name to the object key that backs it.
type Entry struct {
	Kind      Kind   `json:"kind"`
	Name      string `json:"name"`
	ObjectKey string `json:"object_key"`
}

// Registry maps symbolic names (views, features) to object keys. Mappings come
// from in-code registration, an optional manifest file, and an optional
// database table; later sources override earlier ones per (kind, name).
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[Kind]map[string]string)}
}

// Register adds or replaces the mapping for (kind, name).
func (r *Registry) Register(kind Kind, name, objectKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.entries[kind]
	if !ok {
		byName = make(map[string]string)
		r.entries[kind] = byName
	}
	byName[name] = objectKey
}

// Resolve returns the object key registered for (kind, name). An unknown name
// fails synchronously with *UnknownResourceError; no load is attempted.
func (r *Registry) Resolve(kind Kind, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key, ok := r.entries[kind][name]; ok {
		return key, nil
	}
	return "", &UnknownResourceError{Kind: kind, Name: name}
}

// Names returns the registered names for kind, sorted.
func (r *Registry) Names(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries[kind]))
	for name := range r.entries[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every mapping, sorted by kind then name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for kind, byName := range r.entries {
		for name, key := range byName {
			out = append(out, Entry{Kind: kind, Name: name, ObjectKey: key})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the total number of registered mappings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, byName := range r.entries {
		n += len(byName)
	}
	return n
}
