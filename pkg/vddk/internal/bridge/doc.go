// Package bridge holds the cgo-free primitives every binding call is built
// from: the opaque handle codec, the durable-reference registry that carries
// callback contexts across the boundary, the allocation arena used for string
// and array marshaling, the size-discovery helper, and the dispatch side of
// the logging, progress and completion trampolines.
//
// # Design Principles
//
//  1. No cgo: nothing here imports "C". The backend package supplies the
//     native allocator and the exported trampolines, so every rule in this
//     package is testable without the native libraries.
//
//  2. Pass-through handles: a Handle is never dereferenced or validated.
//     Double close and use-after-close are native library errors.
//
//  3. Every acquisition has one release: arena allocations are freed exactly
//     once on every exit path, and every registered callback context is
//     removed exactly once.
//
//  4. Contract violations abort: a registry entry that is missing or has the
//     wrong type inside a trampoline means the binding and its caller
//     disagree. The trampoline panics with a *ContractViolation.
//
// # Threading
//
// The native library may invoke completion and logging callbacks on threads
// the Go runtime has never seen. cgo attaches such threads for the duration
// of the exported call and detaches them on return, so the dispatch
// functions only need to release their context on every exit path, including
// a panicking user callback.
//
// The registry, the active log sink and the outstanding-completion counter
// are safe for concurrent use.
package bridge
