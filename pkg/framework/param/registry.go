package param

import (
	"fmt"
	"sync"
)

// Registry manages plugin parameters.
//
// The mutex guards registration and lookup; audio code should resolve the
// *Parameter it needs once and read it directly afterwards.
type Registry struct {
	params map[uint32]*Parameter
	keys   map[string]uint32
	order  []uint32 // Maintain order for indexed access
	mu     sync.RWMutex
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[uint32]*Parameter),
		keys:   make(map[string]uint32),
		order:  make([]uint32, 0),
	}
}

// Add registers new parameters. Duplicate IDs or keys, against the registry
// or within the batch, reject the whole batch and leave the registry as it was.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[uint32]struct{}, len(params))
	keys := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, exists := r.params[p.ID]; exists {
			return fmt.Errorf("duplicate parameter id %d", p.ID)
		}
		if _, exists := ids[p.ID]; exists {
			return fmt.Errorf("duplicate parameter id %d", p.ID)
		}
		ids[p.ID] = struct{}{}

		if p.Key == "" {
			continue
		}
		if _, exists := r.keys[p.Key]; exists {
			return fmt.Errorf("duplicate parameter key %q", p.Key)
		}
		if _, exists := keys[p.Key]; exists {
			return fmt.Errorf("duplicate parameter key %q", p.Key)
		}
		keys[p.Key] = struct{}{}
	}

	for _, p := range params {
		if p.Key != "" {
			r.keys[p.Key] = p.ID
		}
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
	}

	return nil
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[id]
}

// Lookup retrieves a parameter by its textual key
func (r *Registry) Lookup(key string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[key]
	if !ok {
		return nil
	}
	return r.params[id]
}

// GetByIndex retrieves a parameter by index
func (r *Registry) GetByIndex(index int32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= int32(len(r.order)) {
		return nil
	}

	return r.params[r.order[index]]
}

// Count returns the number of parameters
func (r *Registry) Count() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int32(len(r.order))
}

// All returns all parameters in registration order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		result[i] = r.params[id]
	}

	return result
}

// ResetAll restores every parameter to its default value
func (r *Registry) ResetAll() {
	for _, p := range r.All() {
		p.Reset()
	}
}
