//go:build vddk_release

package fault

// Instrumented reports whether this build carries a live table.
const Instrumented = false

// Set always fails in release builds.
func Set(ID, bool, int32) bool { return false }

// IsEnabled reports every point as disabled in release builds.
func IsEnabled(ID) (bool, int32) { return false, 0 }

// Reset is a no-op in release builds.
func Reset() {}

// Snapshot is always empty in release builds.
func Snapshot() []Entry { return nil }
