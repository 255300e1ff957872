//go:build !cgo || !linux || vddk_nomntapi

package backend

import (
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// MntBuilt reports whether the native mount library is linked in.
const MntBuilt = false

func MntInit(uint32, uint32, *string, *string) uint64 { return bridge.CodeFail }

func MntExit() {}

func MntOpenDisks(bridge.Handle, []string, uint32, *bridge.Handle) uint64 { return bridge.CodeFail }

func MntOpenDiskSet([]bridge.Handle, uint32, *bridge.Handle) uint64 { return bridge.CodeFail }

func MntCloseDiskSet(bridge.Handle) uint64 { return bridge.CodeFail }

func MntGetVolumeHandles(bridge.Handle, *[]bridge.Handle) uint64 { return bridge.CodeFail }

func MntGetOsInfo(bridge.Handle, *params.OsInfo) uint64 { return bridge.CodeFail }

func MntMountVolume(bridge.Handle, bool) uint64 { return bridge.CodeFail }

func MntDismountVolume(bridge.Handle, bool) uint64 { return bridge.CodeFail }

func MntGetVolumeInfo(bridge.Handle, *params.VolumeInfo) uint64 { return bridge.CodeFail }
