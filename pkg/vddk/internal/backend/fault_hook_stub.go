//go:build !cgo || !linux || !vddkfault

package backend

import "github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"

// FaultHook reports whether this build can route the native library's fault
// queries to the Go table.
const FaultHook = false

// InstallFaultHook is unavailable without the vddkfault tag.
func InstallFaultHook(bool) bool { return false }

// PerturbEnable is unavailable without the vddkfault tag.
func PerturbEnable(string, bool) uint64 { return bridge.CodeNotSupported }
