package goflat

import (
	"sort"
	"sync"
)

// Transform converts a value on its way into (filter) or out of (formatter)
// a Record. Any value implementing Transform can be used as a delegate.
type Transform interface {
	Transform(v any) (any, error)
}

// TransformFunc adapts an inline function to Transform.
type TransformFunc func(v any) (any, error)

func (f TransformFunc) Transform(v any) (any, error) { return f(v) }

// Func adapts an infallible inline function to Transform.
func Func(fn func(v any) any) Transform {
	return TransformFunc(func(v any) (any, error) { return fn(v), nil })
}

// Ref is a named reference to a Transform registered on the schema's
// Registry. It is resolved on every call, so registrations made after the
// field was declared are honored.
type Ref string

// Transform always fails: a Ref only has meaning through a Registry.
func (r Ref) Transform(any) (any, error) { return nil, &UnknownFilterError{Reference: string(r)} }

// Registry is the lookup table for named transforms. Lookups are safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[string]Transform)}
}

// Register adds t under name, replacing any previous registration.
func (r *Registry) Register(name string, t Transform) {
	r.mu.Lock()
	r.transforms[name] = t
	r.mu.Unlock()
}

// RegisterFunc is Register for inline functions.
func (r *Registry) RegisterFunc(name string, fn func(v any) (any, error)) {
	r.Register(name, TransformFunc(fn))
}

// Lookup returns the transform registered under name.
func (r *Registry) Lookup(name string) (Transform, bool) {
	r.mu.RLock()
	t, ok := r.transforms[name]
	r.mu.RUnlock()
	return t, ok
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// resolve returns the concrete transform for a chain step.
func (r *Registry) resolve(t Transform) (Transform, error) {
	ref, ok := t.(Ref)
	if !ok {
		return t, nil
	}
	if r != nil {
		if rt, ok := r.Lookup(string(ref)); ok {
			// a registration pointing at another Ref is not followed
			if _, nested := rt.(Ref); !nested {
				return rt, nil
			}
		}
	}
	return nil, &UnknownFilterError{Reference: string(ref)}
}

// apply passes v through chain left to right. An empty chain is the identity.
func (r *Registry) apply(chain []Transform, v any) (any, error) {
	for _, step := range chain {
		t, err := r.resolve(step)
		if err != nil {
			return nil, err
		}
		if v, err = t.Transform(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
