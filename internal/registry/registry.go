// Package registry holds the process-wide set of normalized model
// records, keyed by composite ID.
package registry

import (
	"sort"
	"sync"

	"github.com/modelscout/cli/internal/catalog"
)

// Registry is a concurrency-safe model store. Records are replaced
// wholesale on merge; they are never mutated in place.
type Registry struct {
	mu     sync.RWMutex
	models map[string]catalog.Model
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		models: make(map[string]catalog.Model),
	}
}

// Add merges records into the registry. The merge is idempotent: a record
// with an ID already present overwrites the previous record.
func (r *Registry) Add(models ...catalog.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range models {
		r.models[m.ID] = m
	}
}

// Get returns the record with the given composite ID.
func (r *Registry) Get(id string) (catalog.Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[id]
	return m, ok
}

// List returns records sorted by composite ID. Hidden records are
// filtered out unless includeHidden is set.
func (r *Registry) List(includeHidden bool) []catalog.Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]catalog.Model, 0, len(r.models))
	for _, m := range r.models {
		if m.Hidden && !includeHidden {
			continue
		}
		models = append(models, m)
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})
	return models
}

// RemoveSource drops every record owned by the given source. Used when a
// source configuration is deleted or refetched.
func (r *Registry) RemoveSource(sourceID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, m := range r.models {
		if m.SourceID == sourceID {
			delete(r.models, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of records, hidden ones included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
