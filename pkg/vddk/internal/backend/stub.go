//go:build !cgo || !linux

package backend

import (
	"unsafe"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// Stub implementations for builds without cgo or off Linux. Every entry
// point returns bridge.CodeFail and leaves its out-parameters untouched.

// Built reports whether the native disk library is linked in.
const Built = false

func Init(uint32, uint32, *string, *string) uint64 { return bridge.CodeFail }

func Exit() {}

func ListTransportModes() string { return "" }

func Cleanup(params.ConnectRecord, *uint32, *uint32) uint64 { return bridge.CodeFail }

func Connect(params.ConnectRecord, *bridge.Handle) uint64 { return bridge.CodeFail }

func ConnectEx(params.ConnectRecord, bool, *string, *string, *bridge.Handle) uint64 {
	return bridge.CodeFail
}

func PrepareForAccess(params.ConnectRecord, string) uint64 { return bridge.CodeFail }

func EndAccess(params.ConnectRecord, string) uint64 { return bridge.CodeFail }

func Disconnect(bridge.Handle) uint64 { return bridge.CodeFail }

func GetConnectParams(bridge.Handle, *params.ConnectRecord) uint64 { return bridge.CodeFail }

func Open(bridge.Handle, string, uint32, *bridge.Handle) uint64 { return bridge.CodeFail }

func Close(bridge.Handle) uint64 { return bridge.CodeFail }

func Unlink(bridge.Handle, string) uint64 { return bridge.CodeFail }

func Rename(string, string) uint64 { return bridge.CodeFail }

func Create(bridge.Handle, string, params.CreateParams, bridge.Ref) uint64 { return bridge.CodeFail }

func Clone(bridge.Handle, string, bridge.Handle, string, params.CreateParams, bridge.Ref, bool) uint64 {
	return bridge.CodeFail
}

func Grow(bridge.Handle, string, uint64, bool, bridge.Ref) uint64 { return bridge.CodeFail }

func CheckRepair(bridge.Handle, string, bool) uint64 { return bridge.CodeFail }

func CreateChild(bridge.Handle, string, uint32, bridge.Ref) uint64 { return bridge.CodeFail }

func Shrink(bridge.Handle, bridge.Ref) uint64 { return bridge.CodeFail }

func Defragment(bridge.Handle, bridge.Ref) uint64 { return bridge.CodeFail }

func IsAttachPossible(bridge.Handle, bridge.Handle) uint64 { return bridge.CodeFail }

func Attach(bridge.Handle, bridge.Handle) uint64 { return bridge.CodeFail }

func Read(bridge.Handle, uint64, uint64, unsafe.Pointer) uint64 { return bridge.CodeFail }

func Write(bridge.Handle, uint64, uint64, unsafe.Pointer) uint64 { return bridge.CodeFail }

func ReadAsync(bridge.Handle, uint64, uint64, unsafe.Pointer, bridge.Ref) uint64 {
	return bridge.CodeFail
}

func WriteAsync(bridge.Handle, uint64, uint64, unsafe.Pointer, bridge.Ref) uint64 {
	return bridge.CodeFail
}

func Wait(bridge.Handle) uint64 { return bridge.CodeFail }

func Flush(bridge.Handle) uint64 { return bridge.CodeFail }

func GetMetadataKeys(bridge.Handle, []byte) (int, uint64) { return 0, bridge.CodeFail }

func ReadMetadata(bridge.Handle, string, []byte) (int, uint64) { return 0, bridge.CodeFail }

func WriteMetadata(bridge.Handle, string, string) uint64 { return bridge.CodeFail }

func GetInfo(bridge.Handle, *params.Info) uint64 { return bridge.CodeFail }

func GetTransportMode(bridge.Handle) string { return "" }

func SpaceNeededForClone(bridge.Handle, uint32, *uint64) uint64 { return bridge.CodeFail }

func QueryAllocatedBlocks(bridge.Handle, uint64, uint64, uint64, *[]params.Block) uint64 {
	return bridge.CodeFail
}

func GetErrorText(uint64, *string) *string { return nil }
