package bridge

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory is returned when a marshaling allocation fails. Callers map
// it to CodeOutOfMemory without invoking the native function.
var ErrOutOfMemory = errors.New("bridge: out of memory")

// Allocator hands out native memory. Malloc returns nil on failure.
type Allocator interface {
	Malloc(n uintptr) unsafe.Pointer
	Free(p unsafe.Pointer)
}

// Arena tracks the native allocations made while marshaling the arguments of
// one call. Release frees all of them exactly once.
type Arena struct {
	alloc Allocator
	live  []unsafe.Pointer
}

// NewArena returns an arena drawing from a.
func NewArena(a Allocator) *Arena {
	return &Arena{alloc: a}
}

// Alloc returns n bytes of native memory owned by the arena.
func (a *Arena) Alloc(n uintptr) (unsafe.Pointer, error) {
	if n == 0 {
		n = 1
	}
	p := a.alloc.Malloc(n)
	if p == nil {
		return nil, ErrOutOfMemory
	}
	a.live = append(a.live, p)
	return p, nil
}

// CString marshals s as a NUL-terminated native string. A nil s yields a nil
// pointer, and an empty s yields a pointer to a single NUL byte.
func (a *Arena) CString(s *string) (unsafe.Pointer, error) {
	if s == nil {
		return nil, nil
	}
	return a.CStringValue(*s)
}

// CStringValue marshals s, which is always present.
func (a *Arena) CStringValue(s string) (unsafe.Pointer, error) {
	p, err := a.Alloc(uintptr(len(s)) + 1)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*byte)(p), len(s)+1)
	copy(dst, s)
	dst[len(s)] = 0
	return p, nil
}

// CStringArray marshals ss as a native array of exactly len(ss) independently
// allocated strings and returns a pointer to the first slot. An empty ss
// yields nil.
func (a *Arena) CStringArray(ss []string) (unsafe.Pointer, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	arr, err := a.Alloc(uintptr(len(ss)) * unsafe.Sizeof(uintptr(0)))
	if err != nil {
		return nil, err
	}
	slots := unsafe.Slice((*unsafe.Pointer)(arr), len(ss))
	for i, s := range ss {
		p, err := a.CStringValue(s)
		if err != nil {
			return nil, err
		}
		slots[i] = p
	}
	return arr, nil
}

// Live returns the number of allocations not yet released.
func (a *Arena) Live() int {
	return len(a.live)
}

// Release frees every allocation in reverse order. It is safe to call more
// than once.
func (a *Arena) Release() {
	for i := len(a.live) - 1; i >= 0; i-- {
		a.alloc.Free(a.live[i])
	}
	a.live = a.live[:0]
}
