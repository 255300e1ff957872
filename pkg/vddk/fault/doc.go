// Package fault holds the process-wide fault injection table consulted by
// instrumented builds of the disk library.
//
// The table has one slot per injection point. A slot is either disabled or
// enabled with the error code the native library should return in place of
// running the guarded operation. Set and IsEnabled may be called from any
// goroutine and from native threads; slots are read and written under a
// sync.RWMutex.
//
// The native library only consults the table when the binding is built with
// the vddkfault tag, which installs IsEnabled as the library's fault hook.
// Building with vddk_release compiles the table out: Set reports failure and
// IsEnabled reports every point as disabled.
package fault
