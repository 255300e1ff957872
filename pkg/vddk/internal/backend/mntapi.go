//go:build cgo && linux && !vddk_nomntapi

package backend

/*
#cgo LDFLAGS: -lvixMntapi
#include "vddkgo.h"
#include "vixMntapi.h"

static inline VixError
vddkgo_mnt_init(uint32 major, uint32 minor, const char *libDir, const char *tmpDir)
{
   return VixMntapi_Init(major, minor, vddkgo_log, vddkgo_warn, vddkgo_panic,
                         libDir, tmpDir);
}

static inline VixVolumeHandle
vddkgo_volume_at(VixVolumeHandle *arr, size_t i)
{
   return arr[i];
}

static inline char *
vddkgo_mount_point(VixVolumeInfo *info, size_t i)
{
   return info->inGuestMountPoints[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// MntBuilt reports whether the native mount library is linked in.
const MntBuilt = true

func MntInit(major, minor uint32, libDir, tmpDir *string) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, libDir, tmpDir)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.vddkgo_mnt_init(C.uint32(major), C.uint32(minor), s[0], s[1]))
}

func MntExit() {
	C.VixMntapi_Exit()
}

// MntOpenDisks marshals names into a native array of independently
// allocated strings, all of which are released before returning.
func MntOpenDisks(c bridge.Handle, names []string, mode uint32, out *bridge.Handle) uint64 {
	a := newArena()
	defer a.Release()
	arr, err := a.CStringArray(names)
	if err != nil {
		return bridge.CodeOutOfMemory
	}
	if out == nil {
		return uint64(C.VixMntapi_OpenDisks(conn(c), (**C.char)(arr), C.size_t(len(names)), C.uint32(mode), nil))
	}
	var set C.VixDiskSetHandle
	code := uint64(C.VixMntapi_OpenDisks(conn(c), (**C.char)(arr), C.size_t(len(names)), C.uint32(mode), &set))
	*out = bridge.Encode(set)
	return code
}

func MntOpenDiskSet(disks []bridge.Handle, mode uint32, out *bridge.Handle) uint64 {
	a := newArena()
	defer a.Release()

	var arr *C.VixDiskLibHandle
	if len(disks) > 0 {
		p, err := a.Alloc(uintptr(len(disks)) * unsafe.Sizeof(C.VixDiskLibHandle(nil)))
		if err != nil {
			return bridge.CodeOutOfMemory
		}
		arr = (*C.VixDiskLibHandle)(p)
		slots := unsafe.Slice(arr, len(disks))
		for i, h := range disks {
			slots[i] = disk(h)
		}
	}
	if out == nil {
		return uint64(C.VixMntapi_OpenDiskSet(arr, C.size_t(len(disks)), C.uint32(mode), nil))
	}
	var set C.VixDiskSetHandle
	code := uint64(C.VixMntapi_OpenDiskSet(arr, C.size_t(len(disks)), C.uint32(mode), &set))
	*out = bridge.Encode(set)
	return code
}

func MntCloseDiskSet(set bridge.Handle) uint64 {
	return uint64(C.VixMntapi_CloseDiskSet(bridge.Decode[C.VixDiskSetHandle](set)))
}

// MntGetVolumeHandles copies the volume handles and frees the native array.
func MntGetVolumeHandles(set bridge.Handle, out *[]bridge.Handle) uint64 {
	s := bridge.Decode[C.VixDiskSetHandle](set)
	if out == nil {
		return uint64(C.VixMntapi_GetVolumeHandles(s, nil, nil))
	}
	var n C.size_t
	var arr *C.VixVolumeHandle
	code := uint64(C.VixMntapi_GetVolumeHandles(s, &n, &arr))
	if arr != nil {
		handles := make([]bridge.Handle, int(n))
		for i := range handles {
			handles[i] = bridge.Encode(C.vddkgo_volume_at(arr, C.size_t(i)))
		}
		*out = handles
		C.VixMntapi_FreeVolumeHandles(arr)
	} else if code == bridge.CodeOK {
		*out = []bridge.Handle{}
	}
	return code
}

// MntGetOsInfo copies the guest description and frees the native record.
func MntGetOsInfo(set bridge.Handle, out *params.OsInfo) uint64 {
	s := bridge.Decode[C.VixDiskSetHandle](set)
	if out == nil {
		return uint64(C.VixMntapi_GetOsInfo(s, nil))
	}
	var info *C.VixOsInfo
	code := uint64(C.VixMntapi_GetOsInfo(s, &info))
	if info != nil {
		*out = params.OsInfo{
			Family:       params.OsFamily(info.family),
			MajorVersion: int(info.majorVersion),
			MinorVersion: int(info.minorVersion),
			Is64Bit:      info.osIs64Bit != 0,
			Vendor:       gostr(info.vendor),
			Edition:      gostr(info.edition),
			OSFolder:     gostr(info.osFolder),
		}
		C.VixMntapi_FreeOsInfo(info)
	}
	return code
}

func MntMountVolume(vol bridge.Handle, readOnly bool) uint64 {
	return uint64(C.VixMntapi_MountVolume(bridge.Decode[C.VixVolumeHandle](vol), cbool(readOnly)))
}

func MntDismountVolume(vol bridge.Handle, force bool) uint64 {
	return uint64(C.VixMntapi_DismountVolume(bridge.Decode[C.VixVolumeHandle](vol), cbool(force)))
}

// MntGetVolumeInfo copies the volume description and frees the native
// record. Null mount point entries are skipped.
func MntGetVolumeInfo(vol bridge.Handle, out *params.VolumeInfo) uint64 {
	v := bridge.Decode[C.VixVolumeHandle](vol)
	if out == nil {
		return uint64(C.VixMntapi_GetVolumeInfo(v, nil))
	}
	var info *C.VixVolumeInfo
	code := uint64(C.VixMntapi_GetVolumeInfo(v, &info))
	if info != nil {
		n := int(info.numGuestMountPoints)
		points := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if p := C.vddkgo_mount_point(info, C.size_t(i)); p != nil {
				points = append(points, C.GoString(p))
			}
		}
		*out = params.VolumeInfo{
			Type:         params.VolumeType(info._type),
			IsMounted:    info.isMounted != 0,
			SymbolicLink: gostr(info.symbolicLink),
			MountPoints:  points,
		}
		C.VixMntapi_FreeVolumeInfo(info)
	}
	return code
}
