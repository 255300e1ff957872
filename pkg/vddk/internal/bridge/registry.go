package bridge

import "sync"

// Ref is the key under which a durable reference is registered. It crosses
// the boundary as a uintptr_t context value; zero means "no context".
type Ref uintptr

// Registry keeps Go values reachable while native code holds their Ref.
type Registry struct {
	mu   sync.Mutex
	next Ref
	refs map[Ref]any
}

// NewRegistry returns an empty registry whose first Ref is 1.
func NewRegistry() *Registry {
	return &Registry{next: 1, refs: map[Ref]any{}}
}

// Put registers v and returns its Ref.
func (r *Registry) Put(v any) Ref {
	r.mu.Lock()
	ref := r.next
	r.next++
	if r.next == 0 {
		r.next = 1
	}
	r.refs[ref] = v
	r.mu.Unlock()
	return ref
}

// Get returns the value registered under ref.
func (r *Registry) Get(ref Ref) (any, bool) {
	r.mu.Lock()
	v, ok := r.refs[ref]
	r.mu.Unlock()
	return v, ok
}

// Take removes ref and returns the value it held. Only the first Take of a
// given Ref succeeds.
func (r *Registry) Take(ref Ref) (any, bool) {
	r.mu.Lock()
	v, ok := r.refs[ref]
	if ok {
		delete(r.refs, ref)
	}
	r.mu.Unlock()
	return v, ok
}

// Delete removes ref. Deleting an unknown Ref is a no-op.
func (r *Registry) Delete(ref Ref) {
	r.mu.Lock()
	delete(r.refs, ref)
	r.mu.Unlock()
}

// Len returns the number of live references.
func (r *Registry) Len() int {
	r.mu.Lock()
	n := len(r.refs)
	r.mu.Unlock()
	return n
}

// Lookup returns the value under ref as a T. A missing entry or a value of
// another type is a contract violation.
func Lookup[T any](r *Registry, ref Ref) T {
	v, ok := r.Get(ref)
	if !ok {
		Violation("no registered context for ref %d", ref)
	}
	t, ok := v.(T)
	if !ok {
		Violation("context for ref %d has type %T", ref, v)
	}
	return t
}
